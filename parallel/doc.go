// Package parallel runs a loop body over an index range, fanning out one
// worker per balanced chunk when the range is large enough and more than one
// hardware thread is configured, and running inline otherwise.
//
// The hardware thread count is an explicit Config value so that the
// parallel/sequential decision is deterministic in tests:
//
//	cfg := parallel.Config{Threads: 4}
//	err := parallel.ForEachChunk(core.NewRange(1, n), 1024, func(i int) error {
//	    out[i-1] = f(in[i-1]) // disjoint per-index writes
//	    return nil
//	}, cfg)
//
// Indices within a chunk are visited in ascending order. Chunks run in no
// particular order relative to each other; bodies must synchronize any state
// they share across chunks.
package parallel
