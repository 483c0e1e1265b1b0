package dao

import "errors"

// Sentinel repository errors, match them with errors.Is.
var (
	// ErrNotFound is returned when the requested process is not stored.
	ErrNotFound = errors.New("dao: not found")

	// ErrInvalidID indicates an empty or unstorable process id.
	ErrInvalidID = errors.New("dao: invalid id")

	// ErrNilEntity is returned when the caller attempts to persist a nil
	// pointer.
	ErrNilEntity = errors.New("dao: nil entity")
)
