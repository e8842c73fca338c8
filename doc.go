// Package rowsel provides the row-selection core of a tabular engine:
// turning boolean masks into row positions, and running loop bodies over
// index ranges in balanced parallel chunks.
//
// # Quick Start
//
//	sel := rowsel.New(rowsel.WithThreads(runtime.GOMAXPROCS(0)))
//
//	// Mask to positions: a contiguous selection never allocates a list.
//	v := mask.FromBools(pred)
//	switch rows := sel.Materialize(v).(type) {
//	case core.Range:
//	    fmt.Println("rows", rows.Start, "to", rows.Stop)
//	case core.List:
//	    fmt.Println("rows", []int(rows))
//	}
//
//	// Chunked loop: one worker per chunk of >= 1024 rows when profitable.
//	err := sel.ForEachChunk(core.NewRange(1, n), 1024, func(i int) error {
//	    out[i-1] = transform(in[i-1])
//	    return nil
//	})
//
// # Packages
//
//   - core: Range, List and the Selection sum type (1-based positions)
//   - partition: balanced chunking of [1, n]
//   - dispatch: spawn-or-inline execution behind a uniform Handle, and Scope
//   - parallel: ForEachChunk / ForEachRange fork-join over chunks
//   - mask: packed BitVector and Materialize
//
// # Errors
//
// Invalid partition arguments fail fast with ErrInvalidArgument before any
// work is scheduled. Body failures in chunk workers surface from
// ForEachChunk as *ChunkError values joined together; panics as *PanicError.
// A mismatch between counted and emitted mask positions is a programming
// error and panics with *mask.InvariantError.
package rowsel
