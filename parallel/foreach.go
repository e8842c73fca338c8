package parallel

import (
	"context"

	"github.com/hupe1980/rowsel/core"
	"github.com/hupe1980/rowsel/dispatch"
	"github.com/hupe1980/rowsel/partition"
	"golang.org/x/sync/semaphore"
)

// Plan reports whether ForEachChunk would fan out for (r, baseSize, cfg) and
// how many chunks it would run. Nothing is executed.
func Plan(r core.Range, baseSize int, cfg Config) (parallel bool, chunks int, err error) {
	if baseSize <= 0 {
		return false, 0, &partition.ArgumentError{Name: "baseSize", Value: baseSize, Reason: "must be positive"}
	}

	n := r.Len()
	if n == 0 {
		return false, 0, nil
	}

	if cfg.Threads > 1 && n > baseSize {
		k, err := partition.Count(n, baseSize)
		if err != nil {
			return false, 0, err
		}
		return true, k, nil
	}

	return false, 1, nil
}

// ForEachChunk calls body once for every index of r.
//
// When cfg.Threads > 1 and r is longer than baseSize, r is split into
// max(1, len/baseSize) balanced chunks and each chunk runs on its own worker;
// ForEachChunk returns only after every worker finished. A chunk stops at its
// first failing index while the other chunks run to completion; all chunk
// failures are returned joined, each wrapped in a *ChunkError. A panic in a
// worker is returned as a *dispatch.PanicError.
//
// Otherwise the indices run in ascending order on the calling goroutine and
// the first error is returned as is.
func ForEachChunk(r core.Range, baseSize int, body func(i int) error, cfg Config) error {
	return ForEachRange(r, baseSize, func(chunk core.Range) error {
		for i := chunk.Start; i <= chunk.Stop; i++ {
			if err := body(i); err != nil {
				return err
			}
		}
		return nil
	}, cfg)
}

// ForEachRange is ForEachChunk for bodies that process a whole chunk at a
// time. On the sequential path body receives r itself.
func ForEachRange(r core.Range, baseSize int, body func(chunk core.Range) error, cfg Config) error {
	parallel, chunks, err := Plan(r, baseSize, cfg)
	if err != nil {
		return err
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("for-each dispatch",
			"range", r.String(),
			"base_size", baseSize,
			"threads", cfg.Threads,
			"parallel", parallel,
			"chunks", chunks,
		)
	}

	if chunks == 0 {
		return nil
	}

	if !parallel {
		return body(r)
	}

	return forkJoin(r, baseSize, body, cfg)
}

func forkJoin(r core.Range, baseSize int, body func(chunk core.Range) error, cfg Config) error {
	seq, err := partition.ByBaseSize(r.Len(), baseSize)
	if err != nil {
		return err
	}

	var sem *semaphore.Weighted
	if cfg.MaxInFlight > 0 {
		sem = semaphore.NewWeighted(int64(cfg.MaxInFlight))
	}

	scope := dispatch.NewScope()

	for offsets := range seq {
		chunk := r.Sub(offsets)

		if sem != nil {
			// Cannot fail: the context is never cancelled.
			_ = sem.Acquire(context.Background(), 1)
		}

		dispatch.DispatchIn(scope, true, func() (struct{}, error) {
			if sem != nil {
				defer sem.Release(1)
			}
			if err := body(chunk); err != nil {
				return struct{}{}, &ChunkError{Chunk: chunk, cause: err}
			}
			return struct{}{}, nil
		})
	}

	return scope.Wait()
}
