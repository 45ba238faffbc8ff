package programhash

import (
	"context"
	"fmt"
	"math/big"

	"CairoProgramHash/modules/program"

	"golang.org/x/sync/errgroup"
)

// ComputeMany commits to independent programs concurrently, sharing lib.
// Results are in input order; the first failure cancels the remaining work.
// A limit <= 0 means no limit on concurrent computations.
func ComputeMany(
	ctx context.Context,
	lib Primitives,
	programs []*program.Program,
	backend BackendEnum,
	limit int,
	opts ...Option,
) ([]*big.Int, error) {
	digests := make([]*big.Int, len(programs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, p := range programs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			h, err := Compute(lib, p, backend, opts...)
			if err != nil {
				return fmt.Errorf("program %d: %w", i, err)
			}
			digests[i] = h
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return digests, nil
}
