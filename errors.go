package rowsel

import (
	"github.com/hupe1980/rowsel/dispatch"
	"github.com/hupe1980/rowsel/parallel"
	"github.com/hupe1980/rowsel/partition"
)

// ErrInvalidArgument is returned for malformed partition parameters
// (non-positive length or base size, chunk count out of [1, len]).
var ErrInvalidArgument = partition.ErrInvalidArgument

// ErrScopeClosed is returned by work dispatched into a finished scope.
var ErrScopeClosed = dispatch.ErrScopeClosed

type (
	// ArgumentError names the rejected parameter; it matches ErrInvalidArgument.
	ArgumentError = partition.ArgumentError

	// ChunkError reports a body failure inside one chunk worker.
	ChunkError = parallel.ChunkError

	// PanicError reports a panic raised by dispatched work.
	PanicError = dispatch.PanicError
)
