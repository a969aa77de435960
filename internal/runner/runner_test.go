package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"aoc2023/internal/config"
	"aoc2023/internal/solution"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// lineCount answers the number of lines, and twice that for part 2.
func lineCount(mult int) solution.Func {
	return func(_ context.Context, input string) (int, error) {
		return mult * len(strings.Split(strings.TrimSpace(input), "\n")), nil
	}
}

func failing(context.Context, string) (int, error) {
	return 0, errors.New("boom")
}

func blocking(ctx context.Context, _ string) (int, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

type fixture struct {
	cfg      *config.Config
	registry *solution.Registry
	runner   *Runner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.InputDir = t.TempDir()
	cfg.Workers = 2

	three, six, wrong := 3, 6, 7
	cfg.Answers = map[int]config.Answers{
		1: {Part1: &three, Part2: &six},
		2: {Part1: &wrong},
	}

	reg := solution.NewRegistry()
	reg.Register(solution.Solution{Day: 1, Part1: lineCount(1), Part2: lineCount(2)})
	reg.Register(solution.Solution{Day: 2, Part1: lineCount(1), Part2: failing})
	reg.Register(solution.Solution{Day: 3, Part1: lineCount(1), Part2: lineCount(2)})

	for _, day := range []int{1, 2} {
		require.NoError(t, os.WriteFile(cfg.InputPath(day), []byte("a\nb\nc\n"), 0o644))
	}

	return &fixture{cfg: cfg, registry: reg, runner: New(cfg, reg, zap.NewNop())}
}

func TestRunAllDays(t *testing.T) {
	f := newFixture(t)

	results, err := f.runner.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, results, 6)

	type key struct {
		day  int
		part solution.Part
	}

	got := make(map[key]Result)
	for i, res := range results {
		assert.Equal(t, i/2+1, res.Day)
		assert.Equal(t, solution.Parts[i%2], res.Part)
		got[key{res.Day, res.Part}] = res
	}

	assert.Equal(t, StatusCorrect, got[key{1, solution.Part1}].Status)
	assert.Equal(t, 3, got[key{1, solution.Part1}].Answer)
	assert.Equal(t, StatusCorrect, got[key{1, solution.Part2}].Status)

	wrong := got[key{2, solution.Part1}]
	assert.Equal(t, StatusWrong, wrong.Status)
	assert.True(t, wrong.HasExpected)
	assert.Equal(t, 7, wrong.Expected)

	failed := got[key{2, solution.Part2}]
	assert.Equal(t, StatusFailed, failed.Status)
	assert.EqualError(t, failed.Err, "boom")

	missing := got[key{3, solution.Part1}]
	assert.Equal(t, StatusFailed, missing.Status)
	assert.ErrorIs(t, missing.Err, os.ErrNotExist)

	assert.True(t, AnyBad(results))
}

func TestRunSelectedDays(t *testing.T) {
	f := newFixture(t)

	results, err := f.runner.Run(context.Background(), []int{1})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, AnyBad(results))

	_, err = f.runner.Run(context.Background(), []int{1, 9})
	assert.ErrorIs(t, err, solution.ErrUnknownDay)
}

func TestRunFile(t *testing.T) {
	f := newFixture(t)

	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\ny\n"), 0o644))

	results, err := f.runner.RunFile(context.Background(), 3, path)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].Answer)
	assert.Equal(t, 4, results[1].Answer)
	assert.Equal(t, StatusSolved, results[0].Status)
	assert.False(t, results[0].HasExpected)

	_, err = f.runner.RunFile(context.Background(), 4, path)
	assert.ErrorIs(t, err, solution.ErrUnknownDay)
}

func TestRunTimeout(t *testing.T) {
	f := newFixture(t)
	f.cfg.Timeout = config.Duration(20 * time.Millisecond)

	s := solution.Solution{Day: 4, Part1: blocking, Part2: lineCount(1)}
	results := f.runner.RunInput(context.Background(), s, "a")

	require.Len(t, results, 2)
	assert.Equal(t, StatusFailed, results[0].Status)
	assert.ErrorIs(t, results[0].Err, context.DeadlineExceeded)
	assert.Equal(t, StatusSolved, results[1].Status)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "solved", StatusSolved.String())
	assert.Equal(t, "correct", StatusCorrect.String())
	assert.Equal(t, "wrong", StatusWrong.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "Status(9)", Status(9).String())

	assert.False(t, StatusSolved.Bad())
	assert.False(t, StatusCorrect.Bad())
	assert.True(t, StatusWrong.Bad())
	assert.True(t, StatusFailed.Bad())
}
