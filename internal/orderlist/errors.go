package orderlist

import "errors"

// Every List operation is total: when one of these is returned the list
// is exactly as it was before the call. Callers may ignore them.
var (
	// ErrInvalidInput covers empty or duplicate names and attributes
	// outside the list's schema.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound means no item carries the given identity.
	ErrNotFound = errors.New("not found")
	// ErrOutOfRange means a reorder index fell outside [0, Len).
	ErrOutOfRange = errors.New("index out of range")
)
