package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"aoc2023/internal/report"
	"aoc2023/internal/runner"
	"aoc2023/internal/solution"
)

func (a *app) addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.inputPath, "input", "i", "", "read the input from this file instead of the input directory")
}

// solve runs days, or one day from --input when it is set.
func (a *app) solve(cmd *cobra.Command, args []string) ([]runner.Result, error) {
	days, err := parseDays(args)
	if err != nil {
		return nil, err
	}

	if a.inputPath == "" {
		return a.runner.Run(cmd.Context(), days)
	}

	if len(days) != 1 {
		return nil, errors.New("--input needs exactly one day")
	}

	return a.runner.RunFile(cmd.Context(), days[0], a.inputPath)
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve days and print the answers",
		Long: `Solves both parts of the given days, or of every registered day when none
are given.

Example:
  aoc run 5
  aoc run 5 --input sample.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.solve(cmd, args)
			if err != nil {
				return err
			}

			return report.Render(a.out, results, a.styled())
		},
	}

	a.addInputFlag(cmd)

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [day...]",
		Short: "Solve days and compare with the known answers",
		Long: `Like run, but exits non-zero when an answer differs from the one recorded
in the config file or a part fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.solve(cmd, args)
			if err != nil {
				return err
			}

			if err := report.Render(a.out, results, a.styled()); err != nil {
				return err
			}

			if runner.AnyBad(results) {
				return errors.New("check failed")
			}

			return nil
		},
	}

	a.addInputFlag(cmd)

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, day := range solution.Default.Days() {
				if _, err := fmt.Fprintf(a.out, "day %02d\t%s\n", day, a.cfg.InputPath(day)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <day>",
		Short: "Print the parsed input model of a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}

			s, err := solution.Default.Lookup(day)
			if err != nil {
				return err
			}

			if s.Parse == nil {
				return fmt.Errorf("day %d has no parser to dump", day)
			}

			path := a.inputPath
			if path == "" {
				path = a.cfg.InputPath(day)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read input for day %d: %w", day, err)
			}

			v, err := s.Parse(string(data))
			if err != nil {
				return err
			}

			spew.Fdump(a.out, v)

			return nil
		},
	}

	a.addInputFlag(cmd)

	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <day>",
		Short: "Re-solve a day whenever its input file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}

			path := a.inputPath
			if path == "" {
				path = a.cfg.InputPath(day)
			}

			return a.runner.Watch(cmd.Context(), day, path, func(results []runner.Result) {
				if err := report.Render(a.out, results, a.styled()); err != nil {
					a.logger.Sugar().Warnw("render failed", "error", err)
				}
			})
		},
	}

	a.addInputFlag(cmd)

	return cmd
}
