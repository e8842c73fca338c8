package mask

import (
	"context"
	"testing"

	"github.com/hupe1980/rowsel/core"
	"github.com/hupe1980/rowsel/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeAll(t *testing.T) {
	rng := testutil.NewRNG(4711)

	vs := make([]*BitVector, 32)
	for i := range vs {
		vs[i] = FromBools(rng.Bools(500, 0.2))
	}
	vs = append(vs, FromBools(testutil.Run(300, 10, 20)), nil)

	for _, limit := range []int{0, 1, 4} {
		got, err := MaterializeAll(context.Background(), vs, limit)
		require.NoError(t, err)
		require.Len(t, got, len(vs))

		for i, v := range vs {
			assert.Equal(t, Materialize(v), got[i])
		}
		assert.Equal(t, core.NewRange(10, 20), got[len(vs)-2])
		assert.Equal(t, core.EmptyRange, got[len(vs)-1])
	}
}

func TestMaterializeAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := MaterializeAll(ctx, []*BitVector{New(10), New(20)}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
