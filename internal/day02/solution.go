// Package day02 checks cube games against a bag's contents.
package day02

import (
	"context"
	"fmt"
	"strings"

	"aoc2023/internal/common"
	"aoc2023/internal/solution"
)

func init() {
	solution.Register(solution.Solution{
		Day:   2,
		Part1: part1,
		Part2: part2,
		Parse: func(input string) (any, error) { return parseGames(input) },
	})
}

// Cubes counts cubes of each colour.
type Cubes struct {
	Red, Green, Blue int
}

// Game is one recorded game: its id and the handfuls revealed.
type Game struct {
	ID   int
	Sets []Cubes
}

var bag = Cubes{Red: 12, Green: 13, Blue: 14}

func parseCubes(s string) (Cubes, error) {
	var c Cubes

	for _, part := range strings.Split(s, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return Cubes{}, fmt.Errorf("invalid cube: %q", part)
		}

		n, err := common.ParseInt[int](fields[0])
		if err != nil {
			return Cubes{}, fmt.Errorf("invalid cube count %q: %w", part, err)
		}

		switch fields[1] {
		case "red":
			c.Red += n
		case "green":
			c.Green += n
		case "blue":
			c.Blue += n
		default:
			return Cubes{}, fmt.Errorf("invalid cube colour: %q", part)
		}
	}

	return c, nil
}

func parseGame(line string) (Game, error) {
	head, sets, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, fmt.Errorf("invalid game: %q", line)
	}

	idStr, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return Game{}, fmt.Errorf("invalid game: %q", line)
	}

	id, err := common.ParseInt[int](idStr)
	if err != nil {
		return Game{}, fmt.Errorf("invalid game id in %q: %w", line, err)
	}

	g := Game{ID: id}
	for _, s := range strings.Split(sets, ";") {
		c, err := parseCubes(s)
		if err != nil {
			return Game{}, err
		}

		g.Sets = append(g.Sets, c)
	}

	return g, nil
}

func parseGames(input string) ([]Game, error) {
	lines := common.Lines(input)
	games := make([]Game, 0, len(lines))

	for _, line := range lines {
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}

		games = append(games, g)
	}

	return games, nil
}

// Fits reports whether every handful could have come out of bag.
func (g Game) Fits(bag Cubes) bool {
	for _, s := range g.Sets {
		if s.Red > bag.Red || s.Green > bag.Green || s.Blue > bag.Blue {
			return false
		}
	}

	return true
}

// Power is the product of the fewest cubes of each colour the game needs.
func (g Game) Power() int {
	var need Cubes
	for _, s := range g.Sets {
		need.Red = max(need.Red, s.Red)
		need.Green = max(need.Green, s.Green)
		need.Blue = max(need.Blue, s.Blue)
	}

	return need.Red * need.Green * need.Blue
}

func part1(_ context.Context, input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, g := range games {
		if g.Fits(bag) {
			sum += g.ID
		}
	}

	return sum, nil
}

func part2(_ context.Context, input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, g := range games {
		sum += g.Power()
	}

	return sum, nil
}
