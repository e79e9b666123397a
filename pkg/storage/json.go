package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/rs/zerolog/log"
)

// JSONStore keeps a container in a single pretty-printed JSON file.
//
// The whole file is rewritten on every save; a crash in the middle of a save can leave
// it truncated.
type JSONStore struct {
	migrations []migration
}

// NewJSONStore returns a store that falls back to the legacy readers when a file does
// not match the current format.
func NewJSONStore() *JSONStore {
	return &JSONStore{migrations: defaultMigrations()}
}

// Load reads the container at path. Files written by older versions are converted.
func (s *JSONStore) Load(path string) (*tdo.Tdo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	t, err := decodeCurrent(data)
	if err == nil {
		return t, nil
	}

	log.Debug().Err(err).Str("path", path).Msg("file is not in the current format, trying legacy readers")

	return migrate(s.migrations, path, data)
}

// Save writes the container to path, replacing any existing file.
func (s *JSONStore) Save(path string, t *tdo.Tdo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailure, err)
	}

	defer f.Close()

	if err := encodeJSON(f, newDocument(t)); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailure, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailure, err)
	}

	return nil
}

func decodeCurrent(data []byte) (*tdo.Tdo, error) {
	if err := validate(currentSchema, data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding container: %w", err)
	}

	return doc.container()
}
