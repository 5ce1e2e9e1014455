package app

import "errors"

var (
	// ErrNotSupported reports a control operation the multiplexer does
	// not implement.
	ErrNotSupported = errors.New("app: operation not supported")

	// ErrBufferTooSmall reports an output buffer smaller than the data
	// the operation produces.
	ErrBufferTooSmall = errors.New("app: buffer too small")

	// ErrInvalidArgs reports a control argument of the wrong type or
	// with out-of-range values.
	ErrInvalidArgs = errors.New("app: invalid arguments")

	// ErrClosed reports use of a handle after Close.
	ErrClosed = errors.New("app: handle closed")
)
