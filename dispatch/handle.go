package dispatch

import (
	"github.com/sourcegraph/conc/panics"
)

// Handle is a unit of work that is either still running or already complete.
type Handle[T any] interface {
	// Wait blocks until the work has finished and returns its result.
	// Calling Wait again returns the same result.
	Wait() (T, error)
	// Done reports whether the result is available without blocking.
	Done() bool
}

// RunningTask is the handle of work running on its own goroutine.
type RunningTask[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Wait blocks until the goroutine returns.
func (t *RunningTask[T]) Wait() (T, error) {
	<-t.done
	return t.val, t.err
}

// Done reports whether the goroutine has returned.
func (t *RunningTask[T]) Done() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// CompletedTask is the handle of work that already ran to completion.
type CompletedTask[T any] struct {
	val T
	err error
}

// Completed wraps an available result in a handle.
func Completed[T any](val T, err error) *CompletedTask[T] {
	return &CompletedTask[T]{val: val, err: err}
}

// Wait returns the stored result immediately.
func (t *CompletedTask[T]) Wait() (T, error) { return t.val, t.err }

// Done always reports true.
func (t *CompletedTask[T]) Done() bool { return true }

// Dispatch runs work on a new goroutine when parallel is true and returns
// immediately. Otherwise work runs to completion in the calling goroutine
// before Dispatch returns.
//
// A panic inside work is recovered in both cases and reported by Wait as a
// *PanicError.
func Dispatch[T any](parallel bool, work func() (T, error)) Handle[T] {
	if !parallel {
		val, err := call(work)
		return Completed(val, err)
	}
	return spawn(work)
}

func spawn[T any](work func() (T, error)) *RunningTask[T] {
	t := &RunningTask[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.val, t.err = call(work)
	}()
	return t
}

func call[T any](work func() (T, error)) (T, error) {
	var (
		val T
		err error
		pc  panics.Catcher
	)

	pc.Try(func() { val, err = work() })

	if r := pc.Recovered(); r != nil {
		var zero T
		return zero, &PanicError{Value: r.Value, Stack: r.Stack}
	}
	return val, err
}
