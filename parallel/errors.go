package parallel

import (
	"fmt"

	"github.com/hupe1980/rowsel/core"
	"github.com/hupe1980/rowsel/partition"
)

// ErrInvalidArgument is returned for a non-positive base size.
var ErrInvalidArgument = partition.ErrInvalidArgument

// ChunkError reports a body failure inside one chunk worker.
//
// The body's error can be accessed via errors.Unwrap.
type ChunkError struct {
	Chunk core.Range
	cause error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %v: %v", e.Chunk, e.cause)
}

func (e *ChunkError) Unwrap() error { return e.cause }
