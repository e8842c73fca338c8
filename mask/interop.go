package mask

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/rowsel/core"
	"github.com/hupe1980/rowsel/internal/conv"
)

// FromBitSet copies a bits-and-blooms bitset into a BitVector. Bit i of the
// bitset becomes position i+1; the vector length is b.Len().
func FromBitSet(b *bitset.BitSet) (*BitVector, error) {
	n, err := conv.Uint64ToInt(uint64(b.Len()))
	if err != nil {
		return nil, err
	}

	v := New(n)
	// Both sides use the same little-endian word layout.
	copy(v.words, b.Words())
	if tail := n % wordBits; tail != 0 {
		v.words[len(v.words)-1] &= 1<<tail - 1
	}
	return v, nil
}

// FromRoaring builds a vector of n positions from a roaring bitmap of 0-based
// row ids. Member i becomes position i+1.
func FromRoaring(rb *roaring.Bitmap, n int) (*BitVector, error) {
	v := New(n)
	if rb.IsEmpty() {
		return v, nil
	}

	if maxID := uint64(rb.Maximum()); maxID >= uint64(n) {
		return nil, fmt.Errorf("%w: row id %d for mask of length %d", ErrOutOfRange, maxID, n)
	}

	it := rb.Iterator()
	for it.HasNext() {
		id := it.Next()
		v.words[id/wordBits] |= 1 << (id % wordBits)
	}
	return v, nil
}

// ToRoaring converts a selection into a roaring bitmap of 0-based row ids.
func ToRoaring(sel core.Selection) (*roaring.Bitmap, error) {
	rb := roaring.New()

	switch s := sel.(type) {
	case core.Range:
		if s.IsEmpty() {
			return rb, nil
		}
		if _, err := conv.IntToUint32(s.Start - 1); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
		}
		if _, err := conv.IntToUint32(s.Stop - 1); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
		}
		rb.AddRange(uint64(s.Start-1), uint64(s.Stop))
	default:
		ids := make([]uint32, 0, sel.Len())
		for p := range sel.All() {
			id, err := conv.IntToUint32(p - 1)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
			}
			ids = append(ids, id)
		}
		rb.AddMany(ids)
	}

	return rb, nil
}
