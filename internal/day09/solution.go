// Package day09 extrapolates sensor histories.
package day09

import (
	"context"
	"errors"
	"fmt"

	"aoc2023/internal/common"
	"aoc2023/internal/solution"
)

func init() {
	solution.Register(solution.Solution{Day: 9, Part1: part1, Part2: part2})
}

var errShortHistory = errors.New("history should have at least 2 elements")

// extrapolate returns the values one step after and one step before history.
func extrapolate(history []int) (next, prev int, err error) {
	if len(history) < 2 {
		return 0, 0, errShortHistory
	}

	diffs := make([]int, len(history)-1)
	constant := true

	for i := range diffs {
		diffs[i] = history[i+1] - history[i]
		constant = constant && diffs[i] == diffs[0]
	}

	dNext, dPrev := diffs[0], diffs[0]
	if !constant {
		if dNext, dPrev, err = extrapolate(diffs); err != nil {
			return 0, 0, err
		}
	}

	return history[len(history)-1] + dNext, history[0] - dPrev, nil
}

func solve(input string, forward bool) (int, error) {
	sum := 0

	for i, line := range common.Lines(input) {
		history, err := common.ParseInts[int](line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}

		next, prev, err := extrapolate(history)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}

		if forward {
			sum += next
		} else {
			sum += prev
		}
	}

	return sum, nil
}

func part1(_ context.Context, input string) (int, error) {
	return solve(input, true)
}

func part2(_ context.Context, input string) (int, error) {
	return solve(input, false)
}
