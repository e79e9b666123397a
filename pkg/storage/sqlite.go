package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/matt-steen/tdo/pkg/db"
	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/rs/zerolog/log"
)

// SQLiteStore keeps a container in a sqlite database file.
type SQLiteStore struct{}

// NewSQLiteStore returns a sqlite backed store.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// Load reads the container from the database at path. The file must exist; opening a
// missing file would silently create an empty database.
func (s *SQLiteStore) Load(path string) (*tdo.Tdo, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	ctx := context.Background()

	database, err := db.NewDatabase(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileCorrupted, err)
	}
	defer database.Close()

	t, err := database.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileCorrupted, err)
	}

	log.Debug().Str("path", path).Int("lists", len(t.Lists())).Msg("loaded container from sqlite")

	return t, nil
}

// Save replaces the snapshot stored at path.
func (s *SQLiteStore) Save(path string, t *tdo.Tdo) error {
	ctx := context.Background()

	database, err := db.NewDatabase(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailure, err)
	}
	defer database.Close()

	if err := database.Save(ctx, t); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailure, err)
	}

	return nil
}
