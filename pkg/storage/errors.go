package storage

import "errors"

// Errors returned by Load and Save. They are wrapped with the underlying cause where
// there is one, so match them with errors.Is.
var (
	ErrFileNotFound    = errors.New("file not found")
	ErrFileCorrupted   = errors.New("file corrupted")
	ErrSaveFailure     = errors.New("could not save")
	ErrUnableToConvert = errors.New("unable to convert legacy file")
)
