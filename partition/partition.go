package partition

import (
	"iter"
	"math/bits"

	"github.com/hupe1980/rowsel/core"
	"github.com/hupe1980/rowsel/internal/conv"
)

// Partition returns a lazy sequence of chunkCount balanced chunks covering
// [1, n].
//
// Arguments are validated before the sequence is returned. The sequence holds
// no state and may be ranged over more than once.
func Partition(n, chunkCount int) (iter.Seq[core.Range], error) {
	if n <= 0 {
		return nil, &ArgumentError{Name: "len", Value: n, Reason: "must be positive"}
	}
	if chunkCount <= 0 {
		return nil, &ArgumentError{Name: "chunkCount", Value: chunkCount, Reason: "must be positive"}
	}
	if chunkCount > n {
		return nil, &ArgumentError{Name: "chunkCount", Value: chunkCount, Reason: "must not exceed len"}
	}

	n64, k64 := uint64(n), uint64(chunkCount)

	return func(yield func(core.Range) bool) {
		for i := uint64(1); i <= k64; i++ {
			// Both bounds are <= n, so narrowing cannot fail.
			start, _ := conv.Uint64ToInt(1 + ceilMulDiv(i-1, n64, k64))
			stop, _ := conv.Uint64ToInt(ceilMulDiv(i, n64, k64))
			if !yield(core.Range{Start: start, Stop: stop}) {
				return
			}
		}
	}, nil
}

// ByBaseSize partitions [1, n] into max(1, n/baseSize) chunks, so every chunk
// holds at least baseSize positions unless n itself is smaller.
func ByBaseSize(n, baseSize int) (iter.Seq[core.Range], error) {
	k, err := Count(n, baseSize)
	if err != nil {
		return nil, err
	}
	return Partition(n, k)
}

// Count returns the number of chunks ByBaseSize produces for (n, baseSize).
func Count(n, baseSize int) (int, error) {
	if n <= 0 {
		return 0, &ArgumentError{Name: "len", Value: n, Reason: "must be positive"}
	}
	if baseSize <= 0 {
		return 0, &ArgumentError{Name: "baseSize", Value: baseSize, Reason: "must be positive"}
	}
	return max(1, n/baseSize), nil
}

// Collect drains a chunk sequence into a slice.
func Collect(seq iter.Seq[core.Range]) []core.Range {
	var out []core.Range
	for r := range seq {
		out = append(out, r)
	}
	return out
}

// ceilMulDiv returns ceil(a*b/c) using a 128-bit product. The caller keeps
// a <= c, so the quotient fits in 64 bits.
func ceilMulDiv(a, b, c uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, rem := bits.Div64(hi, lo, c)
	if rem != 0 {
		q++
	}
	return q
}
