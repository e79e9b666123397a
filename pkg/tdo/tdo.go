// Package tdo holds todo lists and the container that owns them.
package tdo

import (
	"fmt"
	"strings"
)

// Version is written into every container created or saved by this build.
const Version = "0.4.0"

// Tdo is the container for all todo lists. It always holds a list named "default"
// and list names are unique regardless of case.
//
// A Tdo is not safe for concurrent use.
type Tdo struct {
	lists       []*TodoList
	accessToken *string
	version     string
}

// New creates a container holding an empty default list.
func New() *Tdo {
	return &Tdo{
		lists:   []*TodoList{NewTodoList(DefaultListName)},
		version: Version,
	}
}

// Restore rebuilds a container from persisted lists. Lists are added in order, so a
// duplicate name fails with ErrNameAlreadyExists. If no default list is present one is
// created in front of the others.
func Restore(lists []*TodoList, accessToken *string, version string) (*Tdo, error) {
	t := &Tdo{
		lists:       make([]*TodoList, 0, len(lists)+1),
		accessToken: accessToken,
		version:     version,
	}

	for _, list := range lists {
		if err := t.AddList(list); err != nil {
			return nil, fmt.Errorf("restoring list %q: %w", list.Name(), err)
		}
	}

	if _, err := t.listIndex(DefaultListName); err != nil {
		t.lists = append([]*TodoList{NewTodoList(DefaultListName)}, t.lists...)
	}

	return t, nil
}

// Version returns the version tag of the build that created or last loaded the container.
func (t *Tdo) Version() string {
	return t.version
}

// Lists returns the lists in order. Adding or removing lists goes through AddList and
// RemoveList; the returned slice is a copy.
func (t *Tdo) Lists() []*TodoList {
	lists := make([]*TodoList, len(t.lists))
	copy(lists, t.lists)

	return lists
}

// List returns the list with the given name, ignoring case.
func (t *Tdo) List(name string) (*TodoList, error) {
	i, err := t.listIndex(name)
	if err != nil {
		return nil, err
	}

	return t.lists[i], nil
}

// GitHubToken returns the stored GitHub access token, if any.
func (t *Tdo) GitHubToken() (string, bool) {
	if t.accessToken == nil {
		return "", false
	}

	return *t.accessToken, true
}

// SetGitHubToken stores the GitHub access token. Prompting for it is up to the caller.
func (t *Tdo) SetGitHubToken(token string) {
	t.accessToken = &token
}

// AddList adds a list unless one with the same name (ignoring case) exists.
func (t *Tdo) AddList(list *TodoList) error {
	if _, err := t.listIndex(list.Name()); err == nil {
		return ErrNameAlreadyExists
	}

	t.lists = append(t.lists, list)

	return nil
}

// RemoveList removes the named list. Only the exact name "default" is protected,
// matching how the list is created.
func (t *Tdo) RemoveList(name string) error {
	if name == DefaultListName {
		return ErrCanNotRemoveDefault
	}

	i, err := t.listIndex(name)
	if err != nil {
		return err
	}

	t.lists = append(t.lists[:i], t.lists[i+1:]...)

	return nil
}

// AddTodo appends a todo to the named list, or to the default list if name is empty.
func (t *Tdo) AddTodo(name string, todo *Todo) error {
	if name == "" {
		name = DefaultListName
	}

	i, err := t.listIndex(name)
	if err != nil {
		return err
	}

	t.lists[i].Add(todo)

	return nil
}

// FindID returns the index of the first list holding a todo with the given id.
func (t *Tdo) FindID(id uint32) (int, error) {
	for i, list := range t.lists {
		if _, err := list.ContainsID(id); err == nil {
			return i, nil
		}
	}

	return -1, ErrNotInList
}

// DoneID marks the todo with the given id as done, whichever list it is in.
func (t *Tdo) DoneID(id uint32) error {
	i, err := t.FindID(id)
	if err != nil {
		return err
	}

	return t.lists[i].DoneID(id)
}

// UndoneID marks the todo with the given id as not done.
func (t *Tdo) UndoneID(id uint32) error {
	i, err := t.FindID(id)
	if err != nil {
		return err
	}

	return t.lists[i].UndoneID(id)
}

// EditID changes the title of the todo with the given id.
func (t *Tdo) EditID(id uint32, title string) error {
	i, err := t.FindID(id)
	if err != nil {
		return err
	}

	pos, err := t.lists[i].ContainsID(id)
	if err != nil {
		return err
	}

	t.lists[i].todos[pos].Edit(title)

	return nil
}

// RemoveID removes the todo with the given id from its list.
func (t *Tdo) RemoveID(id uint32) error {
	i, err := t.FindID(id)
	if err != nil {
		return err
	}

	_, err = t.lists[i].RemoveID(id)

	return err
}

// CleanLists removes all done todos from every list.
func (t *Tdo) CleanLists() {
	for _, list := range t.lists {
		list.Clean()
	}
}

// CleanList removes all done todos from the named list.
func (t *Tdo) CleanList(name string) error {
	i, err := t.listIndex(name)
	if err != nil {
		return err
	}

	t.lists[i].Clean()

	return nil
}

// HighestID returns the largest todo id in the container, or 0 if there are no todos.
func (t *Tdo) HighestID() uint32 {
	var highest uint32

	for _, list := range t.lists {
		for _, todo := range list.todos {
			if todo.id > highest {
				highest = todo.id
			}
		}
	}

	return highest
}

// MoveTodo moves a todo into the target list using TodoList.InsertTodo. Todos that
// track a GitHub issue stay in their list.
func (t *Tdo) MoveTodo(id uint32, target string) error {
	src, err := t.FindID(id)
	if err != nil {
		return err
	}

	dst, err := t.listIndex(target)
	if err != nil {
		return err
	}

	pos, err := t.lists[src].ContainsID(id)
	if err != nil {
		return err
	}

	if t.lists[src].todos[pos].GitHub != nil {
		return ErrNotAllowedToMove
	}

	todo, err := t.lists[src].PopID(id)
	if err != nil {
		return err
	}

	t.lists[dst].InsertTodo(todo)

	return nil
}

func (t *Tdo) listIndex(name string) (int, error) {
	for i, list := range t.lists {
		if strings.EqualFold(list.name, name) {
			return i, nil
		}
	}

	return -1, ErrNoSuchList
}
