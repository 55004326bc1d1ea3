package registry

import "errors"

var (
	// ErrInvalidArgument is returned when an argument is missing or has the wrong kind.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateOperation is returned when two operations share a name.
	ErrDuplicateOperation = errors.New("duplicate operation")
)
