package crucible

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/motion"
)

// SolveBest runs one independent session per start point toward exit and
// returns the cheapest result. Sessions run concurrently (bounded by
// WithParallelism) and share only the read-only grid.
//
// A start from which the exit is unreachable is skipped; ErrUnreachable is
// returned only when every start is unreachable. Any other error, or
// cancellation of ctx, cancels the remaining sessions and is returned.
// Ties in cost go to the start listed first.
func SolveBest(ctx context.Context, g *grid.Grid, starts []grid.Point, exit grid.Point, c motion.Constraints, opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if len(starts) == 0 {
		return Result{}, ErrNoStarts
	}
	if err := c.Validate(); err != nil {
		return Result{}, err
	}

	eg, ctx := errgroup.WithContext(ctx)
	if cfg.Parallelism > 0 {
		eg.SetLimit(cfg.Parallelism)
	}
	sessionOpts := append(slices.Clip(opts), WithContext(ctx))

	results := make([]Result, len(starts))
	found := make([]bool, len(starts))
	for i, start := range starts {
		eg.Go(func() error {
			res, err := SolveWith(g, Request{Start: start, Exit: exit, Constraints: c}, sessionOpts...)
			switch {
			case errors.Is(err, ErrUnreachable):
				return nil
			case err != nil:
				return err
			}
			results[i], found[i] = res, true
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	best := -1
	for i := range results {
		if found[i] && (best < 0 || results[i].Cost < results[best].Cost) {
			best = i
		}
	}
	if best < 0 {
		return Result{}, fmt.Errorf("crucible: none of %d starts reaches %v: %w", len(starts), exit, ErrUnreachable)
	}

	return results[best], nil
}
