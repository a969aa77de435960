// Package day03 finds part numbers and gear ratios in an engine schematic.
package day03

import (
	"context"
	"errors"
	"fmt"

	"aoc2023/internal/common"
	"aoc2023/internal/solution"
)

func init() {
	solution.Register(solution.Solution{Day: 3, Part1: part1, Part2: part2})
}

type point struct {
	row, col int
}

// number is a run of digits on one row, columns [start, end).
type number struct {
	value           int
	row, start, end int
}

type schematic struct {
	rows  []string
	ncols int
}

func parseSchematic(input string) (*schematic, error) {
	rows := common.Lines(input)
	if len(rows) == 0 {
		return nil, errors.New("empty input")
	}

	ncols := len(rows[0])
	for i, row := range rows {
		if len(row) != ncols {
			return nil, fmt.Errorf("rows have different lengths at row %d: %d != %d", i, len(row), ncols)
		}
	}

	return &schematic{rows: rows, ncols: ncols}, nil
}

func (s *schematic) at(p point) (byte, bool) {
	if !common.IsInRange(0, p.row, len(s.rows)-1) || !common.IsInRange(0, p.col, s.ncols-1) {
		return 0, false
	}

	return s.rows[p.row][p.col], true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c byte) bool {
	return !isDigit(c) && c != '.'
}

func (s *schematic) numbers() []number {
	var nums []number

	for r, row := range s.rows {
		for c := 0; c < len(row); {
			if !isDigit(row[c]) {
				c++
				continue
			}

			n := number{row: r, start: c}
			for ; c < len(row) && isDigit(row[c]); c++ {
				n.value = n.value*10 + int(row[c]-'0')
			}

			n.end = c
			nums = append(nums, n)
		}
	}

	return nums
}

// neighbours returns the symbol positions touching n, diagonals included.
func (s *schematic) neighbours(n number) []point {
	var out []point

	for r := n.row - 1; r <= n.row+1; r++ {
		for c := n.start - 1; c <= n.end; c++ {
			p := point{r, c}
			if ch, ok := s.at(p); ok && isSymbol(ch) {
				out = append(out, p)
			}
		}
	}

	return out
}

func part1(_ context.Context, input string) (int, error) {
	s, err := parseSchematic(input)
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, n := range s.numbers() {
		if len(s.neighbours(n)) > 0 {
			sum += n.value
		}
	}

	return sum, nil
}

func part2(_ context.Context, input string) (int, error) {
	s, err := parseSchematic(input)
	if err != nil {
		return 0, err
	}

	gears := make(map[point][]int)
	for _, n := range s.numbers() {
		for _, p := range s.neighbours(n) {
			if ch, _ := s.at(p); ch == '*' {
				gears[p] = append(gears[p], n.value)
			}
		}
	}

	sum := 0
	for _, parts := range gears {
		if len(parts) == 2 {
			sum += parts[0] * parts[1]
		}
	}

	return sum, nil
}
