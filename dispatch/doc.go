// Package dispatch runs a unit of work either on a new goroutine or inline,
// and hands back a uniform Handle in both cases.
//
// The decision to parallelize is made once by the caller; call sites then
// wait on the returned Handle without caring which path was taken:
//
//	h := dispatch.Dispatch(n > threshold, func() (int, error) {
//	    return sum(rows), nil
//	})
//	total, err := h.Wait()
//
// A Scope tracks every handle dispatched through it so an enclosing
// Scope.Wait joins all outstanding work, whether it ran inline or not.
package dispatch
