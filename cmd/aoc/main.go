// Package main provides the CLI entrypoint for aoc.
//
// aoc runs the Advent of Code 2023 solutions:
//   - run: solve days and print the answers
//   - check: solve days and fail unless every known answer matches
//   - list: show the registered days
//   - dump: print a day's parsed input model
//   - watch: re-solve a day whenever its input file changes
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
