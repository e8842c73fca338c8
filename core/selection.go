package core

import (
	"fmt"
	"iter"
	"sort"
)

// Selection is the set of row positions picked by a mask.
//
// It is implemented by Range (contiguous, zero extra memory) and List
// (explicit ascending positions). Use a type switch to detect the shape.
type Selection interface {
	// Len returns the number of selected positions.
	Len() int
	// Contains reports whether pos is selected.
	Contains(pos int) bool
	// All yields the selected positions in ascending order.
	All() iter.Seq[int]
	// Expand materializes the positions into a new slice.
	Expand() []int

	isSelection()
}

// Range is an ascending, contiguous, inclusive span of 1-based positions.
type Range struct {
	Start int
	Stop  int
}

// EmptyRange is the canonical empty range.
var EmptyRange = Range{Start: 1, Stop: 0}

// NewRange returns the range [start, stop].
func NewRange(start, stop int) Range {
	return Range{Start: start, Stop: stop}
}

// Len returns the number of positions in the range.
func (r Range) Len() int {
	if r.Stop < r.Start {
		return 0
	}
	return r.Stop - r.Start + 1
}

// IsEmpty reports whether the range holds no positions.
func (r Range) IsEmpty() bool { return r.Stop < r.Start }

// Contains reports whether pos lies in the range.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos <= r.Stop
}

// All yields every position of the range in ascending order.
func (r Range) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for off := range r.Len() {
			if !yield(r.Start + off) {
				return
			}
		}
	}
}

// Expand returns the positions of the range as a slice.
func (r Range) Expand() []int {
	out := make([]int, r.Len())
	for i := range out {
		out[i] = r.Start + i
	}
	return out
}

// At maps a 1-based offset within the range to the absolute position.
func (r Range) At(offset int) int {
	return r.Start + offset - 1
}

// Sub returns the sub-range addressed by a 1-based inclusive span of offsets.
func (r Range) Sub(chunk Range) Range {
	return Range{Start: r.At(chunk.Start), Stop: r.At(chunk.Stop)}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Start, r.Stop)
}

func (Range) isSelection() {}

// List is an explicit, strictly ascending sequence of 1-based positions.
type List []int

// Len returns the number of positions in the list.
func (l List) Len() int { return len(l) }

// Contains reports whether pos is in the list.
func (l List) Contains(pos int) bool {
	i := sort.SearchInts(l, pos)
	return i < len(l) && l[i] == pos
}

// All yields every position of the list in order.
func (l List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, p := range l {
			if !yield(p) {
				return
			}
		}
	}
}

// Expand returns a copy of the list.
func (l List) Expand() []int {
	out := make([]int, len(l))
	copy(out, l)
	return out
}

// IsContiguous reports whether the positions form a single run.
func (l List) IsContiguous() bool {
	if len(l) == 0 {
		return true
	}
	return l[len(l)-1]-l[0] == len(l)-1
}

func (List) isSelection() {}
