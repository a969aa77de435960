// Package day10 traces the pipe loop through a maze of tiles.
package day10

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aoc2023/internal/common"
	"aoc2023/internal/solution"
)

func init() {
	solution.Register(solution.Solution{Day: 10, Part1: part1, Part2: part2})
}

type point struct {
	row, col int
}

func (p point) add(d point) point {
	return point{p.row + d.row, p.col + d.col}
}

var (
	left  = point{0, -1}
	right = point{0, 1}
	up    = point{-1, 0}
	down  = point{1, 0}
)

// turns maps a move direction and the tile entered to the direction of the next move.
var turns = map[point]map[byte]point{
	left:  {'F': down, 'L': up, '-': left},
	right: {'7': down, 'J': up, '-': right},
	up:    {'|': up, 'F': right, '7': left},
	down:  {'|': down, 'L': right, 'J': left},
}

type maze struct {
	rows  []string
	ncols int
	start point
}

func parseMaze(input string) (*maze, error) {
	rows := common.Lines(input)
	if len(rows) == 0 {
		return nil, errors.New("empty input")
	}

	m := &maze{rows: rows, ncols: len(rows[0]), start: point{-1, -1}}

	for r, row := range rows {
		if len(row) != m.ncols {
			return nil, fmt.Errorf("invalid input: row %d has %d tiles, want %d", r, len(row), m.ncols)
		}

		if c := strings.IndexByte(row, 'S'); c >= 0 && m.start.row < 0 {
			m.start = point{r, c}
		}
	}

	if m.start.row < 0 {
		return nil, errors.New("no start found")
	}

	return m, nil
}

func (m *maze) at(p point) (byte, bool) {
	if !common.IsInRange(0, p.row, len(m.rows)-1) || !common.IsInRange(0, p.col, m.ncols-1) {
		return 0, false
	}

	return m.rows[p.row][p.col], true
}

// route follows the pipes after leaving the start in direction dir and
// returns the tiles visited, start first, if they lead back to the start.
func (m *maze) route(dir point) ([]point, bool) {
	path := []point{m.start}

	for pos := m.start.add(dir); pos != m.start; pos = pos.add(dir) {
		tile, ok := m.at(pos)
		if !ok {
			return nil, false
		}

		next, ok := turns[dir][tile]
		if !ok {
			return nil, false
		}

		path = append(path, pos)
		if len(path) > len(m.rows)*m.ncols {
			return nil, false
		}

		dir = next
	}

	return path, true
}

func (m *maze) loop() ([]point, error) {
	for _, dir := range []point{left, right, up, down} {
		if path, ok := m.route(dir); ok {
			return path, nil
		}
	}

	return nil, errors.New("no loop found")
}

func part1(_ context.Context, input string) (int, error) {
	m, err := parseMaze(input)
	if err != nil {
		return 0, err
	}

	path, err := m.loop()
	if err != nil {
		return 0, err
	}

	return len(path) / 2, nil
}

// part2 counts the tiles enclosed by the loop: the shoelace formula gives
// the loop's area and Pick's theorem turns it into interior lattice points.
func part2(_ context.Context, input string) (int, error) {
	m, err := parseMaze(input)
	if err != nil {
		return 0, err
	}

	path, err := m.loop()
	if err != nil {
		return 0, err
	}

	twiceArea := 0
	for i, p := range path {
		q := path[(i+1)%len(path)]
		twiceArea += p.col*q.row - q.col*p.row
	}

	return (common.Abs(twiceArea)-len(path))/2 + 1, nil
}
