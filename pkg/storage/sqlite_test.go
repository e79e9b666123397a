package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-steen/tdo/pkg/storage"
	"github.com/stretchr/testify/assert"
)

func TestSQLiteSaveAndLoad(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	store := storage.NewSQLiteStore()
	path := filepath.Join(t.TempDir(), "list.sqlite")

	assert.Nil(store.Save(path, getTdo(assert)))

	loaded, err := store.Load(path)
	assert.Nil(err)

	test, err := loaded.List("test")
	assert.Nil(err)
	assert.Equal(2, test.Len())
	assert.True(test.Todos()[1].Done)
	assert.NotNil(test.Todos()[1].GitHub)
	assert.Equal(uint32(2), loaded.HighestID())
}

func TestSQLiteLoadMissingFile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "nope.sqlite")

	_, err := storage.NewSQLiteStore().Load(path)
	assert.ErrorIs(err, storage.ErrFileNotFound)

	// loading must not create the database
	_, err = os.Stat(path)
	assert.True(os.IsNotExist(err))
}

func TestSQLiteLoadCorrupted(t *testing.T) {
	t.Parallel()

	_, err := storage.NewSQLiteStore().Load(writeFile(t, "definitely not a database, just some text"))
	assert.ErrorIs(t, err, storage.ErrFileCorrupted)
}
