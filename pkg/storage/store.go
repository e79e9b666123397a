// Package storage loads and saves containers, converting files written by older
// versions on the way in.
package storage

import (
	"fmt"

	"github.com/matt-steen/tdo/pkg/tdo"
)

// Store persists a whole container at a path.
type Store interface {
	Load(path string) (*tdo.Tdo, error)
	Save(path string, t *tdo.Tdo) error
}

// These constants name the supported backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// New returns the store for the named backend.
func New(backend string) (Store, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONStore(), nil
	case BackendSQLite:
		return NewSQLiteStore(), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", backend)
}
