package storage

import (
	"errors"
	"fmt"

	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/rs/zerolog/log"
)

// migration tries to read a file written by an older version. A stage that does not
// recognize the file returns errNotThisFormat so the next one can try; any other error
// ends the chain.
type migration struct {
	name string
	read func(data []byte) (*tdo.Tdo, error)
}

var errNotThisFormat = errors.New("not this format")

// defaultMigrations lists the legacy readers, newest format first.
func defaultMigrations() []migration {
	return []migration{
		{name: "0.1", read: readLegacy01},
		{name: "raw tree", read: readRawTree},
	}
}

func migrate(migrations []migration, path string, data []byte) (*tdo.Tdo, error) {
	for _, m := range migrations {
		t, err := m.read(data)
		if err == nil {
			log.Info().Str("path", path).Str("format", m.name).Msg("converted legacy file")

			return t, nil
		}

		if !errors.Is(err, errNotThisFormat) {
			log.Warn().Err(err).Str("path", path).Str("format", m.name).Msg("legacy conversion failed")

			return nil, err
		}

		log.Debug().Err(err).Str("path", path).Str("format", m.name).Msg("legacy reader does not apply")
	}

	return nil, fmt.Errorf("%w: %s", ErrFileCorrupted, path)
}
