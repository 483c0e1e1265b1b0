package model

import "errors"

var (
	// ErrComponentNotFound is returned when a component id is absent from the
	// process registry.
	ErrComponentNotFound = errors.New("component not found")

	// ErrWrongKind is returned when a registered component does not have the
	// capability requested by a typed lookup.
	ErrWrongKind = errors.New("component has wrong kind")

	// ErrIllegalSequence is returned when a sequence source or target violates
	// the structural rules of its node variant.
	ErrIllegalSequence = errors.New("illegal sequence")

	// ErrDuplicateComponent is returned when an explicit component id is
	// already registered.
	ErrDuplicateComponent = errors.New("duplicate component id")

	// ErrInvalidComponentID is returned for negative explicit component ids.
	ErrInvalidComponentID = errors.New("invalid component id")
)
