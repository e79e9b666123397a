package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matt-steen/tdo/pkg/storage"
	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/stretchr/testify/assert"
)

// run executes the cli against a data file in dir. Not parallel: the config comes
// from the environment.
func run(t *testing.T, dir string, stdin string, args ...string) (string, error) {
	t.Setenv("TDO_DATA_FILE", filepath.Join(dir, "list.json"))
	t.Setenv("TDO_LOG_FILE", filepath.Join(dir, "debug.log"))
	t.Setenv("TDO_BACKEND", "")
	t.Setenv("TDO_LOG_LEVEL", "")

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "missing.toml")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func load(t *testing.T, dir string) *tdo.Tdo {
	container, err := storage.NewJSONStore().Load(filepath.Join(dir, "list.json"))
	if err != nil {
		t.Fatal(err)
	}

	return container
}

func TestCommands(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	_, err := run(t, dir, "", "newlist", "work")
	assert.Nil(err)

	out, err := run(t, dir, "", "add", "-l", "WORK", "Fix", "bug")
	assert.Nil(err)
	assert.Contains(out, "added #1 Fix bug")

	_, err = run(t, dir, "", "add", "Buy milk")
	assert.Nil(err)

	_, err = run(t, dir, "", "done", "1")
	assert.Nil(err)

	out, err = run(t, dir, "", "list")
	assert.Nil(err)
	assert.Contains(out, "Buy milk")
	assert.NotContains(out, "Fix bug")

	out, err = run(t, dir, "", "list", "--all", "work")
	assert.Nil(err)
	assert.Contains(out, "Fix bug")

	_, err = run(t, dir, "", "move", "2", "work")
	assert.Nil(err)

	_, err = run(t, dir, "", "edit", "2", "Buy", "oat", "milk")
	assert.Nil(err)

	container := load(t, dir)
	work, err := container.List("work")
	assert.Nil(err)
	assert.Equal(2, work.Len())
	assert.Equal("Buy oat milk", work.Todos()[1].Title)

	_, err = run(t, dir, "", "clean")
	assert.Nil(err)
	assert.Equal(1, load(t, dir).Lists()[1].Len())

	out, err = run(t, dir, "", "export", "--format", "md")
	assert.Nil(err)
	assert.Contains(out, "- [ ] Buy oat milk (#2)")
}

func TestCommandErrors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	_, err := run(t, dir, "", "dellist", "default")
	assert.ErrorIs(err, tdo.ErrCanNotRemoveDefault)
	assert.Equal("the default list can not be removed", describe(err))

	_, err = run(t, dir, "", "done", "7")
	assert.ErrorIs(err, tdo.ErrNotInList)

	_, err = run(t, dir, "", "done", "seven")
	assert.NotNil(err)

	_, err = run(t, dir, "", "add", "-l", "nope", "homeless")
	assert.ErrorIs(err, tdo.ErrNoSuchList)

	_, err = run(t, dir, "", "newlist", "Default")
	assert.ErrorIs(err, tdo.ErrNameAlreadyExists)
}

func TestToken(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	out, err := run(t, dir, "", "token", "--show")
	assert.Nil(err)
	assert.Contains(out, "no token stored")

	out, err = run(t, dir, "  abc123\n", "token")
	assert.Nil(err)
	assert.Contains(out, "enter a valid access token")

	token, ok := load(t, dir).GitHubToken()
	assert.True(ok)
	assert.Equal("abc123", token)

	_, err = run(t, dir, "", "token", "xyz")
	assert.Nil(err)

	out, err = run(t, dir, "", "token", "--show")
	assert.Nil(err)
	assert.Contains(out, "xyz")
}
