// Package day08 walks a left/right network of nodes.
package day08

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"aoc2023/internal/common"
	"aoc2023/internal/solution"
)

func init() {
	solution.Register(solution.Solution{
		Day:   8,
		Part1: part1,
		Part2: part2,
		Parse: func(input string) (any, error) { return parse(input) },
	})
}

// Network is the parsed puzzle: the instruction loop and each node's left and right neighbours.
type Network struct {
	Dirs  string
	Nodes map[string][2]string
}

func parse(input string) (*Network, error) {
	blocks := common.Blocks(input)
	if len(blocks) != 2 || len(blocks[0].Lines) != 1 {
		return nil, errors.New("invalid input: want an instruction line, a blank line and the nodes")
	}

	dirs := strings.TrimSpace(blocks[0].Lines[0])
	if dirs == "" || strings.Trim(dirs, "LR") != "" {
		return nil, fmt.Errorf("invalid instructions: %q", dirs)
	}

	n := &Network{Dirs: dirs, Nodes: make(map[string][2]string, len(blocks[1].Lines))}

	for _, line := range blocks[1].Lines {
		name, next, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, fmt.Errorf("invalid node: %q", line)
		}

		inner, ok := strings.CutPrefix(strings.TrimSpace(next), "(")
		if !ok {
			return nil, fmt.Errorf("invalid node: %q", line)
		}

		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return nil, fmt.Errorf("invalid node: %q", line)
		}

		left, right, ok := strings.Cut(inner, ", ")
		if !ok {
			return nil, fmt.Errorf("invalid node: %q", line)
		}

		n.Nodes[strings.TrimSpace(name)] = [2]string{left, right}
	}

	for name, next := range n.Nodes {
		for _, to := range next {
			if _, ok := n.Nodes[to]; !ok {
				return nil, fmt.Errorf("node %s links to unknown node %q", name, to)
			}
		}
	}

	return n, nil
}

// Walk follows the instructions from start until done accepts a node, and
// returns the number of steps taken. Walks that revisit a node at the same
// instruction would loop forever and fail. The walk stops early once ctx is done.
func (n *Network) Walk(ctx context.Context, start string, done func(string) bool) (int, error) {
	if _, ok := n.Nodes[start]; !ok {
		return 0, fmt.Errorf("unknown start node %q", start)
	}

	type state struct {
		node string
		dir  int
	}

	seen := make(map[state]struct{})
	cur := start

	for steps := 0; ; steps++ {
		i := steps % len(n.Dirs)
		if i == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		st := state{node: cur, dir: i}
		if _, ok := seen[st]; ok {
			return 0, fmt.Errorf("walk from %s never finishes", start)
		}

		seen[st] = struct{}{}

		if n.Dirs[i] == 'L' {
			cur = n.Nodes[cur][0]
		} else {
			cur = n.Nodes[cur][1]
		}

		if done(cur) {
			return steps + 1, nil
		}
	}
}

func part1(ctx context.Context, input string) (int, error) {
	n, err := parse(input)
	if err != nil {
		return 0, err
	}

	return n.Walk(ctx, "AAA", func(node string) bool { return node == "ZZZ" })
}

// part2 walks every node ending in A at once; the walks line up after the
// least common multiple of their lengths.
func part2(ctx context.Context, input string) (int, error) {
	n, err := parse(input)
	if err != nil {
		return 0, err
	}

	var starts []string
	for name := range n.Nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}

	if len(starts) == 0 {
		return 0, errors.New("no start nodes ending in A")
	}

	slices.Sort(starts)

	steps := make([]int, 0, len(starts))
	for _, s := range starts {
		k, err := n.Walk(ctx, s, func(node string) bool { return strings.HasSuffix(node, "Z") })
		if err != nil {
			return 0, err
		}

		steps = append(steps, k)
	}

	return common.LCM(steps...), nil
}
