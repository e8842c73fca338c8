package mask

import (
	"context"

	"github.com/hupe1980/rowsel/core"
	"golang.org/x/sync/errgroup"
)

// MaterializeAll materializes several masks concurrently, running at most
// limit at once (unbounded if limit <= 0). The result order matches vs.
// Cancelling ctx stops masks that have not started yet.
func MaterializeAll(ctx context.Context, vs []*BitVector, limit int) ([]core.Selection, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	out := make([]core.Selection, len(vs))
	for i, v := range vs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Materialize(v)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
