package config

import "errors"

var (
	// ErrBadValue reports an environment override that does not parse
	// as the field's type.
	ErrBadValue = errors.New("config: bad override value")

	// ErrBadTiming reports repeat timing that is negative or has the
	// floor above the delay.
	ErrBadTiming = errors.New("config: invalid key repeat timing")
)
