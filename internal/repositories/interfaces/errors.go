package interfaces

import "errors"

var (
	// ErrNotFound is returned when a record addressed by id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateCode is returned when a ticket insert collides with an
	// already-issued redemption code. Callers regenerate and retry.
	ErrDuplicateCode = errors.New("redemption code already exists")
)
