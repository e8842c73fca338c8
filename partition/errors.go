package partition

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for malformed partition parameters.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which parameter was rejected.
//
// It matches ErrInvalidArgument via errors.Is.
type ArgumentError struct {
	Name   string
	Value  int
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s=%d: %s", e.Name, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }
