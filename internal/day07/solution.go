// Package day07 ranks Camel Cards hands.
package day07

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"aoc2023/internal/common"
	"aoc2023/internal/solution"
)

func init() {
	solution.Register(solution.Solution{Day: 7, Part1: part1, Part2: part2})
}

const (
	handSize = 5
	// base exceeds every card value, so a hand's cards pack into one integer.
	base = 15
)

type hand struct {
	strength int
	bid      int
}

func cardValue(c rune, jokers bool) (int, error) {
	switch {
	case c >= '2' && c <= '9':
		return int(c - '0'), nil
	case c == 'T':
		return 10, nil
	case c == 'J':
		if jokers {
			return 0, nil
		}

		return 11, nil
	case c == 'Q':
		return 12, nil
	case c == 'K':
		return 13, nil
	case c == 'A':
		return 14, nil
	default:
		return 0, fmt.Errorf("invalid card: %q", c)
	}
}

// strength orders hands by kind first and card values second. Jokers have
// value 0 and join the most common other card.
func strength(cards string, jokers bool) (int, error) {
	if len(cards) != handSize {
		return 0, fmt.Errorf("invalid hand %q: want %d cards", cards, handSize)
	}

	var counts [base]int

	rank := 0
	for _, c := range cards {
		v, err := cardValue(c, jokers)
		if err != nil {
			return 0, err
		}

		counts[v]++
		rank = rank*base + v
	}

	others := counts[1:]
	slices.SortFunc(others, func(a, b int) int { return cmp.Compare(b, a) })

	kind := (counts[0]+others[0])*handSize + others[1]

	pow := 1
	for range handSize {
		pow *= base
	}

	return kind*pow + rank, nil
}

func winnings(input string, jokers bool) (int, error) {
	lines := common.Lines(input)
	hands := make([]hand, 0, len(lines))

	for _, line := range lines {
		cards, bidStr, ok := strings.Cut(line, " ")
		if !ok {
			return 0, fmt.Errorf("invalid hand: %q", line)
		}

		bid, err := common.ParseInt[int](strings.TrimSpace(bidStr))
		if err != nil {
			return 0, fmt.Errorf("invalid bid in %q: %w", line, err)
		}

		s, err := strength(cards, jokers)
		if err != nil {
			return 0, err
		}

		hands = append(hands, hand{strength: s, bid: bid})
	}

	slices.SortFunc(hands, func(a, b hand) int {
		return cmp.Or(cmp.Compare(a.strength, b.strength), cmp.Compare(a.bid, b.bid))
	})

	total := 0
	for i, h := range hands {
		total += h.bid * (i + 1)
	}

	return total, nil
}

func part1(_ context.Context, input string) (int, error) {
	return winnings(input, false)
}

func part2(_ context.Context, input string) (int, error) {
	return winnings(input, true)
}
