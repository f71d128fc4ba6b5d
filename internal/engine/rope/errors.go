package rope

import "errors"

// Errors returned by rope operations.
var (
	// ErrIndexOutOfRange indicates an index outside the rope.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrRangeInvalid indicates a range whose end precedes its start.
	ErrRangeInvalid = errors.New("invalid range")
)
