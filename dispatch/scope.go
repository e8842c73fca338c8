package dispatch

import (
	"errors"
	"sync"
)

// Scope tracks dispatched work so that Wait joins all of it.
//
// Handles are registered in both the parallel and the inline branch, so an
// inline failure is reported by Wait exactly like a goroutine failure.
type Scope struct {
	mu      sync.Mutex
	closed  bool
	waiters []func() error

	// registering counts DispatchIn calls that passed the closed check but
	// have not appended their handle yet.
	registering sync.WaitGroup

	once sync.Once
	err  error
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// DispatchIn dispatches work like Dispatch and registers the handle with s.
//
// If Wait has already started, the work is not run and the returned handle
// reports ErrScopeClosed.
func DispatchIn[T any](s *Scope, parallel bool, work func() (T, error)) Handle[T] {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		var zero T
		return Completed(zero, ErrScopeClosed)
	}
	s.registering.Add(1)
	s.mu.Unlock()

	defer s.registering.Done()

	// Inline work runs without holding the lock so it may dispatch into s.
	h := Dispatch(parallel, work)

	s.mu.Lock()
	s.waiters = append(s.waiters, func() error {
		_, err := h.Wait()
		return err
	})
	s.mu.Unlock()

	return h
}

// Len returns the number of registered handles.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.waiters)
}

// Wait closes the scope and blocks until every registered handle finished.
// It returns all failures joined, or nil. Later calls return the same error.
func (s *Scope) Wait() error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.registering.Wait()

		var errs []error
		for _, w := range s.waiters {
			if err := w(); err != nil {
				errs = append(errs, err)
			}
		}
		s.err = errors.Join(errs...)
	})
	return s.err
}
