package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedExample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// workspace writes a config file and a day 5 input, returning the config path.
func workspace(t *testing.T, part2 int) string {
	t.Helper()

	dir := t.TempDir()
	inputs := filepath.Join(dir, "inputs")
	require.NoError(t, os.Mkdir(inputs, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(inputs, "day05.txt"), []byte(seedExample), 0o644))

	cfg := fmt.Sprintf(`input_dir: %s
log_level: error
answers:
  5:
    part1: 35
    part2: %d
`, inputs, part2)

	path := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestCheckCorrect(t *testing.T) {
	cfg := workspace(t, 46)

	out, err := execute(t, "check", "5", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "5\tpart1\t35\tcorrect")
	assert.Contains(t, out, "5\tpart2\t46\tcorrect")
	assert.Contains(t, out, "2 correct")
}

func TestCheckWrong(t *testing.T) {
	cfg := workspace(t, 47)

	out, err := execute(t, "check", "day05", "--config", cfg)
	require.EqualError(t, err, "check failed")

	assert.Contains(t, out, "want 47")
	assert.Contains(t, out, "1 correct, 1 wrong")
}

func TestRunWrongIsNotAnError(t *testing.T) {
	cfg := workspace(t, 47)

	out, err := execute(t, "run", "5", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "1 wrong")
}

func TestRunInputOverride(t *testing.T) {
	cfg := workspace(t, 46)

	other := filepath.Join(t.TempDir(), "small.txt")
	require.NoError(t, os.WriteFile(other, []byte("seeds: 1 2\n\nseed-to-location map:\n10 0 5\n"), 0o644))

	out, err := execute(t, "run", "5", "--config", cfg, "--input", other)
	require.NoError(t, err)

	assert.Contains(t, out, "5\tpart1\t11\twrong")
	assert.Contains(t, out, "5\tpart2\t11\twrong")
}

func TestRunInputNeedsOneDay(t *testing.T) {
	cfg := workspace(t, 46)

	_, err := execute(t, "run", "5", "6", "--config", cfg, "--input", "x.txt")
	require.EqualError(t, err, "--input needs exactly one day")
}

func TestInvalidDay(t *testing.T) {
	cfg := workspace(t, 46)

	_, err := execute(t, "run", "26", "--config", cfg)
	require.EqualError(t, err, `invalid day "26"`)

	_, err = execute(t, "run", "five", "--config", cfg)
	require.EqualError(t, err, `invalid day "five"`)
}

func TestMissingExplicitConfig(t *testing.T) {
	_, err := execute(t, "list", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestList(t *testing.T) {
	cfg := workspace(t, 46)

	out, err := execute(t, "list", "--config", cfg)
	require.NoError(t, err)

	for day := 1; day <= 10; day++ {
		assert.Contains(t, out, fmt.Sprintf("day %02d\t", day))
	}
}

func TestDump(t *testing.T) {
	cfg := workspace(t, 46)

	out, err := execute(t, "dump", "5", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "almanac.Almanac")
	assert.Contains(t, out, "humidity-to-location")
}

func TestDumpWithoutParser(t *testing.T) {
	cfg := workspace(t, 46)

	_, err := execute(t, "dump", "1", "--config", cfg)
	require.EqualError(t, err, "day 1 has no parser to dump")
}

func TestParseDay(t *testing.T) {
	for arg, want := range map[string]int{"5": 5, "05": 5, "day05": 5, "Day10": 10, "25": 25} {
		got, err := parseDay(arg)
		require.NoError(t, err, arg)
		assert.Equal(t, want, got, arg)
	}

	for _, arg := range []string{"0", "26", "", "day", "-1"} {
		_, err := parseDay(arg)
		assert.Error(t, err, arg)
	}
}
