package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-steen/tdo/pkg/storage"
	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/stretchr/testify/assert"
)

func getTdo(assert *assert.Assertions) *tdo.Tdo {
	container := tdo.New()

	assert.Nil(container.AddList(tdo.NewTodoList("test")))
	assert.Nil(container.AddTodo("test", tdo.NewTodo(0, "First Entry", nil)))
	assert.Nil(container.AddTodo("test", tdo.NewTodo(1, "Second Entry", &tdo.GitHubRef{Repo: "feliix42/tdo", IssueNumber: 3})))
	assert.Nil(container.AddTodo("", tdo.NewTodo(2, "Third Entry", nil)))
	assert.Nil(container.DoneID(1))

	return container
}

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "list.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	store := storage.NewJSONStore()
	path := filepath.Join(t.TempDir(), "list.json")

	container := getTdo(assert)
	container.SetGitHubToken("token")
	assert.Nil(store.Save(path, container))

	loaded, err := store.Load(path)
	assert.Nil(err)

	assert.Equal(len(container.Lists()), len(loaded.Lists()))

	for i, list := range container.Lists() {
		other := loaded.Lists()[i]
		assert.Equal(list.Name(), other.Name())

		for j, todo := range list.Todos() {
			assert.Equal(todo.ID(), other.Todos()[j].ID())
			assert.Equal(todo.Title, other.Todos()[j].Title)
			assert.Equal(todo.Done, other.Todos()[j].Done)
			assert.Equal(todo.GitHub, other.Todos()[j].GitHub)
		}
	}

	token, ok := loaded.GitHubToken()
	assert.True(ok)
	assert.Equal("token", token)
	assert.Equal(tdo.Version, loaded.Version())
}

func TestSaveFormat(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "list.json")
	assert.Nil(storage.NewJSONStore().Save(path, tdo.New()))

	data, err := os.ReadFile(path)
	assert.Nil(err)
	assert.Equal(`{
  "lists": [
    {
      "name": "default",
      "list": []
    }
  ],
  "access_token": null,
  "version": "`+tdo.Version+`"
}
`, string(data))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	container, err := storage.NewJSONStore().Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Nil(container)
	assert.ErrorIs(err, storage.ErrFileNotFound)
}

func TestSaveFailure(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	err := storage.NewJSONStore().Save(filepath.Join(t.TempDir(), "missing", "list.json"), tdo.New())
	assert.ErrorIs(err, storage.ErrSaveFailure)
}

func TestLoadCorrupted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json"},
		{"truncated", `{"lists": [`},
		{"array", `[1, 2, 3]`},
		{"string", `"default"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := storage.NewJSONStore().Load(writeFile(t, tt.content))
			assert.ErrorIs(t, err, storage.ErrFileCorrupted)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	store, err := storage.New("json")
	assert.Nil(err)
	assert.IsType(&storage.JSONStore{}, store)

	store, err = storage.New("sqlite")
	assert.Nil(err)
	assert.IsType(&storage.SQLiteStore{}, store)

	_, err = storage.New("xml")
	assert.NotNil(err)
}
