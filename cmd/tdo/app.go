package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matt-steen/tdo/pkg/config"
	"github.com/matt-steen/tdo/pkg/storage"
	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// app carries what every command needs: the configuration, the store and the log file.
type app struct {
	configPath string
	verbose    bool

	cfg     *config.Config
	store   storage.Store
	logFile io.Closer
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.verbose {
		cfg.LogLevel = "debug"
	}

	store, err := storage.New(cfg.Backend)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.store = store

	return a.setupLogging()
}

func (a *app) setupLogging() error {
	filePerms := 0o666

	if err := os.MkdirAll(filepath.Dir(a.cfg.LogFile), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	logFile, err := os.OpenFile(a.cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(filePerms))
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	level, err := a.cfg.Level()
	if err != nil {
		logFile.Close()

		return err
	}

	a.logFile = logFile

	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	}).Level(level)

	return nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// load reads the container. A missing data file means a fresh start.
func (a *app) load() (*tdo.Tdo, error) {
	t, err := a.store.Load(a.cfg.DataFile)
	if errors.Is(err, storage.ErrFileNotFound) {
		log.Info().Str("path", a.cfg.DataFile).Msg("no data file yet, starting with an empty container")

		return tdo.New(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", a.cfg.DataFile, err)
	}

	return t, nil
}

func (a *app) save(t *tdo.Tdo) error {
	if err := os.MkdirAll(filepath.Dir(a.cfg.DataFile), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	if err := a.store.Save(a.cfg.DataFile, t); err != nil {
		return fmt.Errorf("saving %s: %w", a.cfg.DataFile, err)
	}

	log.Debug().Str("path", a.cfg.DataFile).Msg("saved container")

	return nil
}

// mutate loads the container, applies fn and saves the result if fn succeeded.
func (a *app) mutate(fn func(t *tdo.Tdo) error) error {
	t, err := a.load()
	if err != nil {
		return err
	}

	if err := fn(t); err != nil {
		return err
	}

	return a.save(t)
}
