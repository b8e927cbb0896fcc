package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// parallelFor calls fn over disjoint [lo, hi) ranges covering [0, n). It
// returns the number of workers used.
func parallelFor(ctx context.Context, n int, o *options, fn func(lo, hi int)) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	workers := o.workers(n)
	if workers <= 1 {
		fn(0, n)
		return 1, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := o.chunk(n, workers)
	for lo := 0; lo < n; lo += chunk {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return workers, err
	}
	return workers, ctx.Err()
}
