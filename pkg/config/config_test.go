package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-steen/tdo/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cfg := config.Default("/home/me")
	assert.Equal("/home/me/.tdo/list.json", cfg.DataFile)
	assert.Equal("json", cfg.Backend)
	assert.Nil(cfg.Validate())

	level, err := cfg.Level()
	assert.Nil(err)
	assert.Equal(zerolog.InfoLevel, level)
}

// not parallel: t.Setenv
func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "tdo.toml")
	err := os.WriteFile(path, []byte(`
data_file = "/tmp/todos.sqlite"
backend = "sqlite"
log_level = "warn"
`), 0o600)
	assert.Nil(err)

	t.Setenv("TDO_LOG_LEVEL", "debug")
	t.Setenv("TDO_DATA_FILE", "")
	t.Setenv("TDO_BACKEND", "")
	t.Setenv("TDO_LOG_FILE", "/tmp/tdo.log")

	cfg, err := config.Load(path)
	assert.Nil(err)
	assert.Equal("/tmp/todos.sqlite", cfg.DataFile)
	assert.Equal("sqlite", cfg.Backend)
	assert.Equal("debug", cfg.LogLevel)
	assert.Equal("/tmp/tdo.log", cfg.LogFile)
}

func TestLoadMissingFile(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("TDO_DATA_FILE", "")
	t.Setenv("TDO_BACKEND", "")
	t.Setenv("TDO_LOG_LEVEL", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Nil(err)
	assert.Equal("json", cfg.Backend)
}

func TestLoadInvalid(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("TDO_DATA_FILE", "")
	t.Setenv("TDO_BACKEND", "postgres")
	t.Setenv("TDO_LOG_LEVEL", "")

	_, err := config.Load("")
	assert.NotNil(err)
	assert.Contains(err.Error(), "invalid backend")

	path := filepath.Join(t.TempDir(), "tdo.toml")
	assert.Nil(os.WriteFile(path, []byte("backend = ["), 0o600))

	t.Setenv("TDO_BACKEND", "")

	_, err = config.Load(path)
	assert.NotNil(err)
}

func TestValidateLevel(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cfg := config.Default("/home/me")
	cfg.LogLevel = "loud"
	assert.NotNil(cfg.Validate())
}
