package interfaces

import "errors"

var (
	// ErrNotFound is returned when a lookup or a conditional update matched no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)
