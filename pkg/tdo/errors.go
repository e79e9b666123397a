package tdo

import "errors"

// Lookup errors.
var (
	// ErrNotInList is returned when no todo with the given id exists in scope.
	ErrNotInList = errors.New("no todo with that id")
	// ErrNoSuchList is returned when no list matches the given name.
	ErrNoSuchList = errors.New("no such list")
)

// Structural errors.
var (
	ErrCanNotRemoveDefault = errors.New("the default list can not be removed")
	ErrNameAlreadyExists   = errors.New("a list with that name already exists")
)

// ErrNotAllowedToMove is returned when moving a todo that tracks a GitHub issue.
var ErrNotAllowedToMove = errors.New("todos linked to a github issue can not be moved")
