package almanac

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"aoc2023/internal/common"
)

// SeedRanges reads the seeds as (start, length) pairs. A pair of length zero
// holds no seeds and yields an empty range, which MinRangeLocation skips.
func (a *Almanac) SeedRanges() ([]Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d seeds do not form (start, length) pairs", ErrMalformedSeedList, len(a.Seeds))
	}

	ranges := make([]Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		start, length := a.Seeds[i], a.Seeds[i+1]
		if start > math.MaxUint64-length {
			return nil, fmt.Errorf("%w: seed range %d+%d overflows", ErrMalformedSeedList, start, length)
		}

		ranges = append(ranges, RangeOf(start, length))
	}

	return ranges, nil
}

// RequireChain checks that the chain translates src categories into dst categories.
func (a *Almanac) RequireChain(src, dst string) error {
	if got := a.Chain.Source(); got != src {
		return fmt.Errorf("%w: chain starts at %q, want %q", ErrMissingSection, got, src)
	}

	if got := a.Chain.Destination(); got != dst {
		return fmt.Errorf("%w: chain ends at %q, want %q", ErrMissingSection, got, dst)
	}

	return nil
}

// MinLocation returns the smallest value any key maps to.
func MinLocation(c *Chain, keys []uint64) (uint64, error) {
	best, ok := common.MinFunc(keys, c.Lookup)
	if !ok {
		return 0, ErrNoSeeds
	}

	return best, nil
}

// MinRangeLocation returns the smallest value any key of any range maps to.
// Ranges are evaluated concurrently, at most workers at a time (unbounded
// when workers <= 0).
func MinRangeLocation(ctx context.Context, c *Chain, ranges []Range, workers int) (uint64, error) {
	mins := make([]uint64, len(ranges))
	found := make([]bool, len(ranges))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, r := range ranges {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			mins[i], found[i] = common.MinFunc(c.LookupRange(r), func(r Range) uint64 {
				return r.Start
			})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var (
		best uint64
		seen bool
	)

	for i, ok := range found {
		if ok && (!seen || mins[i] < best) {
			best, seen = mins[i], true
		}
	}

	if !seen {
		return 0, ErrNoSeeds
	}

	return best, nil
}
