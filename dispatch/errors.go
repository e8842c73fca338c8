package dispatch

import (
	"errors"
	"fmt"
)

// ErrScopeClosed is returned by handles dispatched into a Scope whose Wait
// has already started. The work is not run.
var ErrScopeClosed = errors.New("dispatch: scope closed")

// PanicError reports a panic raised by dispatched work.
//
// If the panic value is itself an error it can be reached via errors.Unwrap.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("dispatch: work panicked: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
