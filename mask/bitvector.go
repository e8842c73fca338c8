package mask

import (
	"fmt"
	"math/bits"
)

const wordBits = 64

const allOnes = ^uint64(0)

// BitVector is a fixed-length packed boolean vector with 1-based positions.
//
// Bits past Len in the last word are always zero.
type BitVector struct {
	words []uint64
	n     int
}

// New creates an all-false vector of n positions.
func New(n int) *BitVector {
	if n < 0 {
		panic(fmt.Sprintf("mask: negative length %d", n))
	}
	return &BitVector{
		words: make([]uint64, wordCount(n)),
		n:     n,
	}
}

// FromBools packs a boolean slice.
func FromBools(flags []bool) *BitVector {
	v := New(len(flags))
	for i, f := range flags {
		if f {
			v.words[i/wordBits] |= 1 << (i % wordBits)
		}
	}
	return v
}

// FromWords wraps existing words holding n bits. The words are borrowed, not
// copied, unless bits past n are set, in which case a cleaned copy is made.
func FromWords(words []uint64, n int) (*BitVector, error) {
	if n < 0 || len(words) != wordCount(n) {
		return nil, fmt.Errorf("%w: %d words for %d bits", ErrLengthMismatch, len(words), n)
	}

	if tail := n % wordBits; tail != 0 {
		last := words[len(words)-1]
		if keep := last & (1<<tail - 1); keep != last {
			cp := make([]uint64, len(words))
			copy(cp, words)
			cp[len(cp)-1] = keep
			words = cp
		}
	}

	return &BitVector{words: words, n: n}, nil
}

// Len returns the number of positions.
func (v *BitVector) Len() int {
	if v == nil {
		return 0
	}
	return v.n
}

// Get reports the flag at 1-based position pos.
func (v *BitVector) Get(pos int) bool {
	v.check(pos)
	i := pos - 1
	return v.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

// Set assigns the flag at 1-based position pos.
func (v *BitVector) Set(pos int, flag bool) {
	v.check(pos)
	i := pos - 1
	if flag {
		v.words[i/wordBits] |= 1 << (i % wordBits)
	} else {
		v.words[i/wordBits] &^= 1 << (i % wordBits)
	}
}

// Count returns the number of set positions.
func (v *BitVector) Count() int {
	if v == nil {
		return 0
	}
	c := 0
	for _, w := range v.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// Words exposes the backing words. Callers must not set bits past Len.
func (v *BitVector) Words() []uint64 {
	if v == nil {
		return nil
	}
	return v.words
}

// Bools unpacks the vector.
func (v *BitVector) Bools() []bool {
	out := make([]bool, v.Len())
	for i := range out {
		out[i] = v.words[i/wordBits]&(1<<(i%wordBits)) != 0
	}
	return out
}

func (v *BitVector) check(pos int) {
	if pos < 1 || pos > v.n {
		panic(fmt.Sprintf("mask: position %d out of range [1,%d]", pos, v.n))
	}
}

func wordCount(n int) int {
	return (n + wordBits - 1) / wordBits
}
