// Package day05 pushes seeds through the almanac's chain of maps and
// reports the lowest location reached.
package day05

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"aoc2023/internal/almanac"
	"aoc2023/internal/solution"
)

const (
	firstCategory = "seed"
	lastCategory  = "location"
)

func init() {
	solution.Register(solution.Solution{
		Day:   5,
		Part1: part1,
		Part2: part2,
		Parse: func(input string) (any, error) { return parse(input) },
	})
}

func parse(input string) (*almanac.Almanac, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse almanac: %w", err)
	}

	if err := a.RequireChain(firstCategory, lastCategory); err != nil {
		return nil, err
	}

	return a, nil
}

// part1 reads every seed as a single key.
func part1(_ context.Context, input string) (int, error) {
	a, err := parse(input)
	if err != nil {
		return 0, err
	}

	loc, err := almanac.MinLocation(a.Chain, a.Seeds)
	if err != nil {
		return 0, err
	}

	return answer(loc)
}

// part2 reads the seeds as (start, length) ranges.
func part2(ctx context.Context, input string) (int, error) {
	a, err := parse(input)
	if err != nil {
		return 0, err
	}

	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}

	loc, err := almanac.MinRangeLocation(ctx, a.Chain, ranges, runtime.GOMAXPROCS(0))
	if err != nil {
		return 0, err
	}

	return answer(loc)
}

func answer(loc uint64) (int, error) {
	if loc > math.MaxInt {
		return 0, fmt.Errorf("lowest location %d does not fit an int", loc)
	}

	return int(loc), nil
}
