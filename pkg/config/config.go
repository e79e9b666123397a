// Package config loads settings from defaults, a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config holds the settings for the tdo binaries.
type Config struct {
	// DataFile is where the container is stored.
	DataFile string `toml:"data_file"`
	// Backend is either "json" or "sqlite".
	Backend  string `toml:"backend"`
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
}

// Default returns the settings used when nothing else is configured. Paths are relative
// to home, usually the user's home directory.
func Default(home string) *Config {
	dir := filepath.Join(home, ".tdo")

	return &Config{
		DataFile: filepath.Join(dir, "list.json"),
		Backend:  "json",
		LogFile:  filepath.Join(dir, "debug.log"),
		LogLevel: "info",
	}
}

// DefaultPath returns the location of the config file.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tdo", "tdo.toml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}

	return filepath.Join(home, ".config", "tdo", "tdo.toml"), nil
}

// Load builds the configuration in priority order: defaults, then the config file at
// path (a missing file is fine), then environment variables.
func Load(path string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("home: %w", err)
	}

	cfg := Default(home)

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.loadEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	_, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("loading config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) loadEnv() {
	if v := os.Getenv("TDO_DATA_FILE"); v != "" {
		c.DataFile = v
	}

	if v := os.Getenv("TDO_BACKEND"); v != "" {
		c.Backend = v
	}

	if v := os.Getenv("TDO_LOG_FILE"); v != "" {
		c.LogFile = v
	}

	if v := os.Getenv("TDO_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the backend and log level.
func (c *Config) Validate() error {
	switch c.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("invalid backend %q (want json or sqlite)", c.Backend)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data_file is empty")
	}

	return nil
}

// Level returns the zerolog level for LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
