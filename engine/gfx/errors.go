package gfx

import "errors"

// Failure kinds surfaced by the rendering core. All are returned as
// values for the host to match with errors.Is; nothing in this package
// logs or terminates.
var (
	ErrResourceExhausted = errors.New("gfx: no free texture units")
	ErrLimitExceeded     = errors.New("gfx: hardware limit exceeded")
	ErrUnsupportedFormat = errors.New("gfx: unsupported pixel format")
	ErrInvalidState      = errors.New("gfx: operation invalid in current state")
	ErrOutOfBounds       = errors.New("gfx: region out of bounds")
)
