// Package day06 counts the ways to win boat races.
package day06

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"aoc2023/internal/common"
	"aoc2023/internal/solution"
)

func init() {
	solution.Register(solution.Solution{Day: 6, Part1: part1, Part2: part2})
}

// parse returns the text after the "Time:" and "Distance:" labels.
func parse(input string) (string, string, error) {
	lines := common.Lines(input)
	if len(lines) != 2 {
		return "", "", errors.New("invalid input: want a Time and a Distance line")
	}

	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return "", "", fmt.Errorf("invalid time: %q", lines[0])
	}

	dists, ok := strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return "", "", fmt.Errorf("invalid distance: %q", lines[1])
	}

	return times, dists, nil
}

func part1(_ context.Context, input string) (int, error) {
	timeStr, distStr, err := parse(input)
	if err != nil {
		return 0, err
	}

	times, err := common.ParseInts[int](timeStr)
	if err != nil {
		return 0, fmt.Errorf("invalid time: %w", err)
	}

	dists, err := common.ParseInts[int](distStr)
	if err != nil {
		return 0, fmt.Errorf("invalid distance: %w", err)
	}

	if len(times) != len(dists) {
		return 0, fmt.Errorf("invalid input: %d times but %d distances", len(times), len(dists))
	}

	product := 1
	for i := range times {
		product *= winningWays(times[i], dists[i])
	}

	return product, nil
}

// part2 ignores the spacing and reads each line as one number.
func part2(_ context.Context, input string) (int, error) {
	timeStr, distStr, err := parse(input)
	if err != nil {
		return 0, err
	}

	t, err := common.ParseInt[int](strings.Join(strings.Fields(timeStr), ""))
	if err != nil {
		return 0, fmt.Errorf("invalid time: %w", err)
	}

	d, err := common.ParseInt[int](strings.Join(strings.Fields(distStr), ""))
	if err != nil {
		return 0, fmt.Errorf("invalid distance: %w", err)
	}

	return winningWays(t, d), nil
}

// winningWays counts the hold times x in [0, t] with x*(t-x) > d. The bounds
// are the roots of x*(t-x) = d+1.
func winningWays(t, d int) int {
	tf, df := float64(t), float64(d)

	disc := tf*tf - 4*(df+1)
	if disc < 0 {
		return 0
	}

	root := math.Sqrt(disc)
	lo := max(int(math.Ceil((tf-root)/2)), 0)
	hi := min(int(math.Floor((tf+root)/2)), t)

	if hi < lo {
		return 0
	}

	return hi - lo + 1
}
