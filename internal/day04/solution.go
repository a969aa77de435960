// Package day04 scores scratchcards.
package day04

import (
	"context"
	"fmt"
	"strings"

	"aoc2023/internal/common"
	"aoc2023/internal/solution"
)

func init() {
	solution.Register(solution.Solution{Day: 4, Part1: part1, Part2: part2})
}

// matches returns, per card, how many of my numbers are winning numbers.
func matches(input string) ([]int, error) {
	lines := common.Lines(input)
	out := make([]int, 0, len(lines))

	for _, line := range lines {
		_, numbers, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("invalid card: %q", line)
		}

		winStr, mineStr, ok := strings.Cut(numbers, "|")
		if !ok || strings.Contains(mineStr, "|") {
			return nil, fmt.Errorf("invalid card: %q", line)
		}

		wins, err := common.ParseInts[int](winStr)
		if err != nil {
			return nil, fmt.Errorf("invalid card %q: %w", line, err)
		}

		mine, err := common.ParseInts[int](mineStr)
		if err != nil {
			return nil, fmt.Errorf("invalid card %q: %w", line, err)
		}

		winning := make(map[int]struct{}, len(wins))
		for _, w := range wins {
			winning[w] = struct{}{}
		}

		n := 0
		for _, m := range mine {
			if _, ok := winning[m]; ok {
				n++
			}
		}

		out = append(out, n)
	}

	return out, nil
}

func part1(_ context.Context, input string) (int, error) {
	won, err := matches(input)
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, n := range won {
		if n > 0 {
			sum += 1 << (n - 1)
		}
	}

	return sum, nil
}

func part2(_ context.Context, input string) (int, error) {
	won, err := matches(input)
	if err != nil {
		return 0, err
	}

	cards := make([]int, len(won))
	for i := range cards {
		cards[i] = 1
	}

	total := 0
	for i, n := range won {
		for j := i + 1; j <= i+n && j < len(cards); j++ {
			cards[j] += cards[i]
		}

		total += cards[i]
	}

	return total, nil
}
