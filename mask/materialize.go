package mask

import (
	"math/bits"

	"github.com/hupe1980/rowsel/core"
)

type scanState uint8

const (
	noRunYet scanState = iota
	runOpen
	runClosed
	mustList
)

func (s scanState) String() string {
	switch s {
	case noRunYet:
		return "noRunYet"
	case runOpen:
		return "runOpen"
	case runClosed:
		return "runClosed"
	case mustList:
		return "mustList"
	default:
		return "unknown"
	}
}

// runScanner tracks the first run of set bits across words.
type runScanner struct {
	state scanState
	start int // first position of the first run
	stop  int // last position of the first run, valid in runClosed
	seen  int // set bits accounted for in words already stepped
}

// step consumes the word covering positions base+1..base+64. It returns false
// when the word proves the selection is not one run; the word is then left
// unaccounted and s.state is mustList.
func (s *runScanner) step(word uint64, base int) bool {
	switch word {
	case 0:
		if s.state == runOpen {
			s.stop = base
			s.state = runClosed
		}
		return true

	case allOnes:
		switch s.state {
		case noRunYet:
			s.start = base + 1
			s.state = runOpen
		case runClosed:
			s.state = mustList
			return false
		}
		s.seen += wordBits
		return true
	}

	tz := bits.TrailingZeros64(word)
	lz := bits.LeadingZeros64(word)
	ones := bits.OnesCount64(word)

	// The ones in this word are split by at least one zero.
	if ones != wordBits-tz-lz {
		s.state = mustList
		return false
	}

	switch s.state {
	case noRunYet:
		s.start = base + tz + 1
		s.state = runOpen
	case runOpen:
		// The open run ended at bit 63 of the previous word.
		if tz != 0 {
			s.state = mustList
			return false
		}
	case runClosed:
		s.state = mustList
		return false
	}

	if lz != 0 {
		s.stop = base + wordBits - lz
		s.state = runClosed
	}
	s.seen += ones
	return true
}

// firstRunEnd returns the last position of the first run seen before word
// from. A run that is still open reaches the end of the previous word.
func (s *runScanner) firstRunEnd(from int) int {
	if s.stop != 0 {
		return s.stop
	}
	return from * wordBits
}

// Materialize returns the positions of v's set bits.
//
// The result is a core.Range when the set bits are contiguous (including the
// empty range {1,0} when none are set) and a core.List otherwise. v is only
// read.
func Materialize(v *BitVector) core.Selection {
	n := v.Len()
	nnz := v.Count()

	if nnz == 0 {
		return core.EmptyRange
	}
	if nnz == n {
		return core.NewRange(1, n)
	}

	var s runScanner
	for wi, word := range v.words {
		base := wi * wordBits
		if !s.step(word, base) {
			return materializeList(v.words, wi, &s, nnz, n)
		}
		if s.seen == nnz {
			r := core.NewRange(s.start, s.start+nnz-1)
			if r.Stop > n {
				panic(&InvariantError{Want: n, Got: r.Stop, Msg: "range past end of mask"})
			}
			return r
		}
	}

	panic(&InvariantError{Want: nnz, Got: s.seen, Msg: "scan ended before all set bits were seen"})
}

// materializeList finishes a scan that found more than one run. Words before
// from have been stepped by s; from onwards are decoded bit by bit.
func materializeList(words []uint64, from int, s *runScanner, nnz, n int) core.List {
	out := make(core.List, 0, nnz)

	// Back-fill the first run without touching its bits again.
	first := 0
	if s.seen > 0 {
		first = s.firstRunEnd(from) - s.start + 1
	}
	if first != s.seen {
		panic(&InvariantError{Want: s.seen, Got: first, Msg: "first run length"})
	}
	for p := s.start; p < s.start+first; p++ {
		out = append(out, p)
	}

	for wi := from; wi < len(words) && len(out) < nnz; wi++ {
		w := words[wi]
		base := wi*wordBits + 1
		for w != 0 {
			out = append(out, base+bits.TrailingZeros64(w))
			w &= w - 1
		}
	}

	checkList(out, nnz, n)
	return out
}

// MaterializeBools is Materialize for an unpacked boolean slice. There is no
// word-level fast path; the slice is scanned linearly.
func MaterializeBools(flags []bool) core.Selection {
	nnz, first, last := 0, 0, 0
	for i, f := range flags {
		if !f {
			continue
		}
		if nnz == 0 {
			first = i + 1
		}
		last = i + 1
		nnz++
	}

	if nnz == 0 {
		return core.EmptyRange
	}
	if last-first+1 == nnz {
		return core.NewRange(first, last)
	}

	out := make(core.List, 0, nnz)
	for i := first - 1; i < last; i++ {
		if flags[i] {
			out = append(out, i+1)
		}
	}

	checkList(out, nnz, len(flags))
	return out
}

func checkList(out core.List, nnz, n int) {
	if len(out) != nnz {
		panic(&InvariantError{Want: nnz, Got: len(out), Msg: "emitted position count"})
	}
	prev := 0
	for _, p := range out {
		if p <= prev || p > n {
			panic(&InvariantError{Want: prev + 1, Got: p, Msg: "positions not strictly ascending within mask"})
		}
		prev = p
	}
}
