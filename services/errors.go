package services

import "errors"

var (
	// ErrInvalidArgument marks malformed caller input, e.g. a hotel name
	// search string that is empty or under 3 characters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateReference reports a booking reference collision on insert.
	// The store wraps its unique-index violation into this so the engine can
	// retry with a fresh reference.
	ErrDuplicateReference = errors.New("duplicate booking reference")
)
