package day08

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/solution/solutiontest"
)

const example1 = `
RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`

const example2 = `
LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

const example3 = `
LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

func TestPart1(t *testing.T) {
	solutiontest.Run(t, part1,
		solutiontest.Case{Name: "example 1", Input: example1, Want: 2},
		solutiontest.Case{Name: "example 2", Input: example2, Want: 6},
	)
}

func TestPart2(t *testing.T) {
	solutiontest.Run(t, part2, solutiontest.Case{Name: "example", Input: example3, Want: 6})
}

func TestParse(t *testing.T) {
	n, err := parse(solutiontest.Trim(example2))
	require.NoError(t, err)

	assert.Equal(t, "LLR", n.Dirs)
	assert.Equal(t, [2]string{"AAA", "ZZZ"}, n.Nodes["BBB"])
	assert.Len(t, n.Nodes, 3)
}

func TestWalkNeverFinishes(t *testing.T) {
	_, err := part1(t.Context(), "L\n\nAAA = (BBB, BBB)\nBBB = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "never finishes")
}

func TestWalkStopsWhenCanceled(t *testing.T) {
	n, err := parse(solutiontest.Trim(example2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err = n.Walk(ctx, "AAA", func(node string) bool { return node == "ZZZ" })
	require.ErrorIs(t, err, context.Canceled)

	steps, err := n.Walk(t.Context(), "AAA", func(node string) bool { return node == "ZZZ" })
	require.NoError(t, err)
	assert.Equal(t, 6, steps)
}

func TestInvalidInput(t *testing.T) {
	solutiontest.Fails(t, part1, "",
		"",
		"LR",
		"LX\n\nAAA = (AAA, AAA)",
		"LR\n\nAAA (AAA, AAA)",
		"LR\n\nAAA = AAA, AAA",
		"LR\n\nAAA = (AAA AAA)",
		"LR\n\nAAA = (AAA, BBB)",
		"LR\n\nBBB = (BBB, BBB)",
	)
	solutiontest.Fails(t, part2, "no start nodes", "LR\n\nBBB = (BBB, BBB)")
}
