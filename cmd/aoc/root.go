package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aoc2023/internal/config"
	"aoc2023/internal/runner"
	"aoc2023/internal/solution"
)

// app is the state shared by the commands of one invocation.
type app struct {
	out io.Writer

	// flags
	configPath string
	inputPath  string
	verbose    bool
	plain      bool

	cfg    *config.Config
	logger *zap.Logger
	runner *runner.Runner
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 solutions",
		Long: `aoc solves the Advent of Code 2023 puzzles.

Inputs are read from the configured input directory (inputs/day05.txt by
default). Known answers listed in aoc.yaml are checked by "aoc check".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default "+config.DefaultPath+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.plain, "plain", false, "print plain tab-separated output even on a terminal")

	root.AddCommand(
		a.runCmd(),
		a.checkCmd(),
		a.listCmd(),
		a.dumpCmd(),
		a.watchCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Level())

	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.logger = logger.With(zap.String("run_id", uuid.NewString()), zap.String("command", cmd.Name()))
	a.runner = runner.New(cfg, solution.Default, a.logger)

	return nil
}

// styled reports whether output goes to a terminal that can show colours.
func (a *app) styled() bool {
	if a.plain {
		return false
	}

	f, ok := a.out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// parseDay accepts "5", "05" and "day05".
func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(arg), "day"))
	if err != nil || day < 1 || day > 25 {
		return 0, fmt.Errorf("invalid day %q", arg)
	}

	return day, nil
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := parseDay(arg)
		if err != nil {
			return nil, err
		}

		days = append(days, day)
	}

	return days, nil
}
