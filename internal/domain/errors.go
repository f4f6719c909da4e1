package domain

import "errors"

// Sentinel errors returned by services and repositories. Controllers map
// these to HTTP status codes; services wrap unexpected errors with context.
var (
	ErrNotFound              = errors.New("not found")
	ErrDuplicateID           = errors.New("id already exists")
	ErrDuplicateRegistration = errors.New("student is already registered for this event")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrInvalidInput          = errors.New("invalid input")
)
