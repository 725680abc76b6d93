package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	// Every validation failure from a smart constructor wraps this error,
	// so callers can detect the whole class with errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoContactMethod indicates an attempt to build a contact without a
	// primary contact method. A Contact structurally requires at least one.
	ErrNoContactMethod = errors.New("contact requires a primary contact method")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)
