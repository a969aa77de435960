package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"aoc2023/internal/config"
	"aoc2023/internal/solution"
)

// Result is the outcome of one part of one day.
type Result struct {
	Day    int
	Part   solution.Part
	Answer int
	// Expected is the known answer; meaningful only when HasExpected is set.
	Expected    int
	HasExpected bool
	Status      Status
	Err         error
	Elapsed     time.Duration
}

// Runner runs solutions from a registry.
type Runner struct {
	cfg      *config.Config
	registry *solution.Registry
	logger   *zap.Logger
}

// New returns a Runner.
func New(cfg *config.Config, registry *solution.Registry, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{cfg: cfg, registry: registry, logger: logger}
}

// Run solves both parts of each day, or of every registered day when days
// is empty. Results come back ordered by day, then part. The error is
// non-nil only when a day is not registered.
func (r *Runner) Run(ctx context.Context, days []int) ([]Result, error) {
	if len(days) == 0 {
		days = r.registry.Days()
	}

	sols := make([]solution.Solution, len(days))
	for i, day := range days {
		s, err := r.registry.Lookup(day)
		if err != nil {
			return nil, err
		}

		sols[i] = s
	}

	results := make([][]Result, len(days))

	var g errgroup.Group
	if r.cfg.Workers > 0 {
		g.SetLimit(r.cfg.Workers)
	}

	for i, s := range sols {
		g.Go(func() error {
			results[i] = r.runFile(ctx, s, r.cfg.InputPath(s.Day))
			return nil
		})
	}

	_ = g.Wait()

	out := make([]Result, 0, 2*len(days))
	for _, rs := range results {
		out = append(out, rs...)
	}

	return out, nil
}

// RunFile solves both parts of day using the input at path.
func (r *Runner) RunFile(ctx context.Context, day int, path string) ([]Result, error) {
	s, err := r.registry.Lookup(day)
	if err != nil {
		return nil, err
	}

	return r.runFile(ctx, s, path), nil
}

func (r *Runner) runFile(ctx context.Context, s solution.Solution, path string) []Result {
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read input for day %d: %w", s.Day, err)
		r.logger.Warn("input unavailable", zap.Int("day", s.Day), zap.String("path", path), zap.Error(err))

		results := make([]Result, 0, len(solution.Parts))
		for _, part := range solution.Parts {
			results = append(results, r.check(Result{Day: s.Day, Part: part, Err: err}))
		}

		return results
	}

	return r.RunInput(ctx, s, string(data))
}

// RunInput solves both parts of s against input.
func (r *Runner) RunInput(ctx context.Context, s solution.Solution, input string) []Result {
	results := make([]Result, 0, len(solution.Parts))
	for _, part := range solution.Parts {
		results = append(results, r.solve(ctx, s, part, input))
	}

	return results
}

type outcome struct {
	answer int
	err    error
}

func (r *Runner) solve(ctx context.Context, s solution.Solution, part solution.Part, input string) Result {
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(r.cfg.Timeout))

		defer cancel()
	}

	log := r.logger.With(zap.Int("day", s.Day), zap.Stringer("part", part))
	log.Debug("solving", zap.Int("input_bytes", len(input)))

	start := time.Now()
	done := make(chan outcome, 1)

	go func() {
		answer, err := s.Run(ctx, part, input)
		done <- outcome{answer: answer, err: err}
	}()

	res := Result{Day: s.Day, Part: part}

	select {
	case o := <-done:
		res.Answer, res.Err = o.answer, o.err
	case <-ctx.Done():
		res.Err = fmt.Errorf("day %d %s: %w", s.Day, part, ctx.Err())
	}

	res.Elapsed = time.Since(start)
	res = r.check(res)

	if res.Err != nil {
		log.Warn("solve failed", zap.Error(res.Err), zap.Duration("elapsed", res.Elapsed))
	} else {
		log.Info("solved",
			zap.Int("answer", res.Answer),
			zap.Stringer("status", res.Status),
			zap.Duration("elapsed", res.Elapsed))
	}

	return res
}

// check fills in the expected answer and the status.
func (r *Runner) check(res Result) Result {
	res.Expected, res.HasExpected = r.cfg.Expected(res.Day, res.Part)

	switch {
	case res.Err != nil:
		res.Status = StatusFailed
	case !res.HasExpected:
		res.Status = StatusSolved
	case res.Answer == res.Expected:
		res.Status = StatusCorrect
	default:
		res.Status = StatusWrong
	}

	return res
}

// AnyBad reports whether any result is wrong or failed.
func AnyBad(results []Result) bool {
	for _, res := range results {
		if res.Status.Bad() {
			return true
		}
	}

	return false
}
