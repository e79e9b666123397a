package tdo_test

import (
	"testing"

	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/stretchr/testify/assert"
)

func ids(todos []*tdo.Todo) []uint32 {
	out := []uint32{}
	for _, todo := range todos {
		out = append(out, todo.ID())
	}

	return out
}

func newList(name string, todoIDs ...uint32) *tdo.TodoList {
	list := tdo.NewTodoList(name)
	for _, id := range todoIDs {
		list.Add(tdo.NewTodo(id, "entry", nil))
	}

	return list
}

func TestNewTodo(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	todo := tdo.NewTodo(7, "water the plants", nil)
	assert.Equal(uint32(7), todo.ID())
	assert.Equal("water the plants", todo.Title)
	assert.False(todo.Done)
	assert.Nil(todo.GitHub)

	todo.Edit("water the cactus")
	assert.Equal("water the cactus", todo.Title)

	todo.SetDone()
	todo.SetDone()
	assert.True(todo.Done)

	todo.SetUndone()
	assert.False(todo.Done)
}

func TestDoneIDKeepsTodo(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	list := newList("test", 0, 1)

	assert.Nil(list.DoneID(1))

	pos, err := list.ContainsID(1)
	assert.Nil(err)
	assert.Equal(1, pos)
	assert.True(list.Todos()[1].Done)

	assert.ErrorIs(list.DoneID(42), tdo.ErrNotInList)
}

func TestRemoveID(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	list := newList("test", 0, 1, 2)

	removed, err := list.RemoveID(1)
	assert.Nil(err)
	assert.Equal(uint32(1), removed.ID())
	assert.Equal([]uint32{0, 2}, ids(list.Todos()))

	_, err = list.ContainsID(1)
	assert.ErrorIs(err, tdo.ErrNotInList)

	_, err = list.RemoveID(1)
	assert.ErrorIs(err, tdo.ErrNotInList)
}

func TestInsertTodo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing []uint32
		insert   uint32
		want     []uint32
	}{
		{"empty list", nil, 3, []uint32{3}},
		{"smallest goes first", []uint32{2, 4}, 1, []uint32{1, 2, 4}},
		{"between", []uint32{2, 4}, 3, []uint32{2, 3, 4}},
		{"largest goes last", []uint32{0, 1}, 3, []uint32{0, 1, 3}},
		// existing order is kept; the todo lands after the last smaller id
		{"unsorted list", []uint32{5, 1, 9, 2}, 3, []uint32{5, 1, 9, 2, 3}},
		{"unsorted with larger tail", []uint32{1, 9, 2, 8}, 4, []uint32{1, 9, 2, 4, 8}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list := newList("test", tt.existing...)
			list.InsertTodo(tdo.NewTodo(tt.insert, "moved", nil))
			assert.Equal(t, tt.want, ids(list.Todos()))
		})
	}
}

func TestListUndoneDoesNotAlias(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	list := newList("test", 0, 1, 2)
	assert.Nil(list.DoneID(1))

	undone := list.ListUndone()
	assert.Equal([]uint32{0, 2}, ids(undone))

	undone[0].Edit("changed")
	assert.Equal("entry", list.Todos()[0].Title)
}

func TestClean(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	list := newList("test", 0, 1, 2, 3)
	assert.Nil(list.DoneID(0))
	assert.Nil(list.DoneID(2))

	list.Clean()
	assert.Equal([]uint32{1, 3}, ids(list.Todos()))

	list.Clean()
	assert.Equal([]uint32{1, 3}, ids(list.Todos()))
}

func TestCleanDuplicateIDs(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	list := tdo.NewTodoList("test")
	list.Add(tdo.NewTodo(1, "open", nil))

	done := tdo.NewTodo(1, "finished", nil)
	done.SetDone()
	list.Add(done)

	list.Clean()
	assert.Equal(1, list.Len())
	assert.Equal("open", list.Todos()[0].Title)
}
