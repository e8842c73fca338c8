package core

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		len  int
	}{
		{"empty canonical", EmptyRange, 0},
		{"single", NewRange(3, 3), 1},
		{"span", NewRange(1, 4), 4},
		{"reversed", NewRange(5, 2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.len, tt.r.Len())
			assert.Equal(t, tt.len == 0, tt.r.IsEmpty())
			assert.Len(t, tt.r.Expand(), tt.len)
			assert.Equal(t, tt.r.Expand(), nonNil(slices.Collect(tt.r.All())))
		})
	}
}

func TestRange_AllAtMaxInt(t *testing.T) {
	r := NewRange(math.MaxInt-2, math.MaxInt)

	assert.Equal(t, []int{math.MaxInt - 2, math.MaxInt - 1, math.MaxInt}, slices.Collect(r.All()))
}

func TestRange_Sub(t *testing.T) {
	r := NewRange(11, 20)

	assert.Equal(t, 11, r.At(1))
	assert.Equal(t, 20, r.At(10))
	assert.Equal(t, NewRange(14, 16), r.Sub(NewRange(4, 6)))
	assert.True(t, r.Contains(11))
	assert.False(t, r.Contains(21))
	assert.Equal(t, "[11,20]", r.String())
}

func TestList(t *testing.T) {
	l := List{2, 3, 5}

	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Contains(5))
	assert.False(t, l.Contains(4))
	assert.False(t, l.IsContiguous())
	assert.True(t, List{4, 5, 6}.IsContiguous())
	assert.True(t, List{}.IsContiguous())
	assert.Equal(t, []int{2, 3, 5}, slices.Collect(l.All()))

	cp := l.Expand()
	cp[0] = 99
	assert.Equal(t, 2, l[0], "Expand must copy")
}

func TestSelection_Shapes(t *testing.T) {
	var sels = []Selection{NewRange(1, 3), List{1, 2, 3}}
	for _, s := range sels {
		assert.Equal(t, []int{1, 2, 3}, s.Expand())
	}
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
