package console

import "errors"

// Sentinel errors for registry and session operations.
var (
	// ErrInvalidConsole is returned for an out-of-range console index.
	ErrInvalidConsole = errors.New("console index out of range")

	// ErrUnknownConsole is returned when no session matches the given
	// identity. Identity lookups fail, never panic, because removal
	// can race with any holder of a stale reference.
	ErrUnknownConsole = errors.New("unknown console")

	// ErrWouldBlock is returned by input reads on an empty queue.
	ErrWouldBlock = errors.New("input queue empty")
)
