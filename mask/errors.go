package mask

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when a word slice does not match the
	// requested bit length.
	ErrLengthMismatch = errors.New("mask: word count does not match length")

	// ErrOutOfRange is returned when a bitmap member does not fit the mask.
	ErrOutOfRange = errors.New("mask: position out of range")
)

// InvariantError is the panic payload raised when materialization emits a
// result inconsistent with the mask. It indicates a bug in the scanner.
type InvariantError struct {
	Want int
	Got  int
	Msg  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("mask: invariant violated: %s (want %d, got %d)", e.Msg, e.Want, e.Got)
}
