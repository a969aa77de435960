package day01

import (
	"testing"

	"aoc2023/internal/solution/solutiontest"
)

func TestPart1(t *testing.T) {
	solutiontest.Run(t, part1, solutiontest.Case{
		Name: "example",
		Input: `
1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`,
		Want: 142,
	})
}

func TestPart2(t *testing.T) {
	solutiontest.Run(t, part2,
		solutiontest.Case{
			Name: "example",
			Input: `
two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`,
			Want: 281,
		},
		solutiontest.Case{Name: "leading word", Input: "oxonetwo1nine", Want: 19},
		solutiontest.Case{Name: "overlapping words", Input: "jrvcznlvfgntthree5fivejqrheightwoxkh", Want: 32},
		solutiontest.Case{Name: "repeated letter", Input: "tthree5five2", Want: 32},
		solutiontest.Case{Name: "single digit", Input: "abc7xyz", Want: 77},
	)
}

func TestNoDigit(t *testing.T) {
	solutiontest.Fails(t, part1, "no digit", "abc", "1a\nbcd")
	solutiontest.Fails(t, part2, "line 2", "one\nzero")
}
