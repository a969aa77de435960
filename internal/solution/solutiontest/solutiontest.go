// Package solutiontest runs table tests against solution funcs.
package solutiontest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/solution"
)

// Case is one input and its expected answer.
type Case struct {
	Name  string
	Input string
	Want  int
}

// Run checks every case against fn. Inputs are trimmed of surrounding
// whitespace so cases can be written as indented raw strings.
func Run(t *testing.T, fn solution.Func, cases ...Case) {
	t.Helper()

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			got, err := fn(context.Background(), Trim(c.Input))
			require.NoError(t, err)
			assert.Equal(t, c.Want, got)
		})
	}
}

// Fails checks that fn rejects every input with an error containing want.
func Fails(t *testing.T, fn solution.Func, want string, inputs ...string) {
	t.Helper()

	for _, in := range inputs {
		_, err := fn(context.Background(), Trim(in))
		if assert.Error(t, err, "input %q", in) && want != "" {
			assert.Contains(t, err.Error(), want, "input %q", in)
		}
	}
}

// Trim drops leading newlines, trailing whitespace and the common tab indentation
// of every line.
func Trim(input string) string {
	input = strings.TrimRight(strings.TrimLeft(input, "\n"), " \t\n")
	lines := strings.Split(input, "\n")

	indent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}

		n := len(l) - len(strings.TrimLeft(l, "\t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	if indent <= 0 {
		return input
	}

	for i, l := range lines {
		if len(l) >= indent {
			lines[i] = l[indent:]
		}
	}

	return strings.Join(lines, "\n")
}
