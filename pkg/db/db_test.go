package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/matt-steen/tdo/pkg/db"
	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/stretchr/testify/assert"
)

func getDB(t *testing.T, assert *assert.Assertions) (*db.Database, string) {
	filename := filepath.Join(t.TempDir(), "test.sqlite")

	database, err := db.NewDatabase(context.Background(), filename)
	assert.NotNil(database)
	assert.Nil(err)

	return database, filename
}

func TestNewDatabaseBadFile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, err := db.NewDatabase(context.Background(), "/alwfkjasfd/asdflkjdsal.sqlite")
	assert.Nil(database)
	assert.NotNil(err)
	assert.Contains(err.Error(), "error running base sql")
}

func TestNewDatabaseIdempotent(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, filename := getDB(t, assert)
	assert.Nil(database.Close())

	database2, err := db.NewDatabase(context.Background(), filename)
	assert.NotNil(database2)
	assert.Nil(err)
	assert.Nil(database2.Close())
}

func TestLoadEmpty(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, _ := getDB(t, assert)
	defer database.Close()

	container, err := database.Load(context.Background())
	assert.Nil(err)
	assert.Len(container.Lists(), 1)
	assert.Equal(tdo.DefaultListName, container.Lists()[0].Name())
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, filename := getDB(t, assert)

	container := tdo.New()
	container.SetGitHubToken("secret")
	assert.Nil(container.AddList(tdo.NewTodoList("test")))
	assert.Nil(container.AddTodo("test", tdo.NewTodo(0, "First Entry", nil)))
	assert.Nil(container.AddTodo("test", tdo.NewTodo(1, "Second Entry", &tdo.GitHubRef{Repo: "a/b", IssueNumber: 4})))
	assert.Nil(container.AddTodo("", tdo.NewTodo(2, "Third Entry", nil)))
	assert.Nil(container.DoneID(0))

	assert.Nil(database.Save(context.Background(), container))
	assert.Nil(database.Close())

	// reopen to make sure everything made it to disk
	database, err := db.NewDatabase(context.Background(), filename)
	assert.Nil(err)
	defer database.Close()

	loaded, err := database.Load(context.Background())
	assert.Nil(err)

	lists := loaded.Lists()
	assert.Len(lists, 2)
	assert.Equal("default", lists[0].Name())
	assert.Equal("test", lists[1].Name())

	todos := lists[1].Todos()
	assert.Len(todos, 2)
	assert.Equal("First Entry", todos[0].Title)
	assert.True(todos[0].Done)
	assert.Equal(uint32(1), todos[1].ID())
	assert.Equal(&tdo.GitHubRef{Repo: "a/b", IssueNumber: 4}, todos[1].GitHub)

	token, ok := loaded.GitHubToken()
	assert.True(ok)
	assert.Equal("secret", token)
	assert.Equal(tdo.Version, loaded.Version())
}

func TestSaveReplacesSnapshot(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, _ := getDB(t, assert)
	defer database.Close()

	first := tdo.New()
	assert.Nil(first.AddList(tdo.NewTodoList("old")))
	assert.Nil(database.Save(context.Background(), first))

	second := tdo.New()
	assert.Nil(second.AddTodo("", tdo.NewTodo(9, "only one", nil)))
	assert.Nil(database.Save(context.Background(), second))

	loaded, err := database.Load(context.Background())
	assert.Nil(err)
	assert.Len(loaded.Lists(), 1)
	assert.Equal(1, loaded.Lists()[0].Len())
	assert.Equal(uint32(9), loaded.HighestID())

	_, ok := loaded.GitHubToken()
	assert.False(ok)
}
