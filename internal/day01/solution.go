// Package day01 recovers calibration values from lines of text.
package day01

import (
	"context"
	"fmt"
	"strings"

	"aoc2023/internal/common"
	"aoc2023/internal/solution"
)

func init() {
	solution.Register(solution.Solution{Day: 1, Part1: part1, Part2: part2})
}

var digitWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func part1(_ context.Context, input string) (int, error) {
	return calibrate(input, false)
}

func part2(_ context.Context, input string) (int, error) {
	return calibrate(input, true)
}

func calibrate(input string, words bool) (int, error) {
	sum := 0

	for i, line := range common.Lines(input) {
		first, ok := firstDigit(line, words)
		if !ok {
			return 0, fmt.Errorf("line %d: no digit in %q", i+1, line)
		}

		last, _ := lastDigit(line, words)
		sum += first*10 + last
	}

	return sum, nil
}

func firstDigit(line string, words bool) (int, bool) {
	for i := range len(line) {
		if d, ok := digitAt(line, i, words); ok {
			return d, true
		}
	}

	return 0, false
}

func lastDigit(line string, words bool) (int, bool) {
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, words); ok {
			return d, true
		}
	}

	return 0, false
}

// digitAt reports the digit starting at line[i], spelled out or not.
// Spelled digits may overlap, as in "oneight".
func digitAt(line string, i int, words bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}

	if !words {
		return 0, false
	}

	for d, w := range digitWords[1:] {
		if strings.HasPrefix(line[i:], w) {
			return d + 1, true
		}
	}

	return 0, false
}
