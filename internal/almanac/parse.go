package almanac

import (
	"strings"

	"aoc2023/internal/common"
	"aoc2023/internal/diagnostic"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
	seedsSection = "seeds"
)

// Almanac is a parsed puzzle input: the seed list and the chain of maps.
type Almanac struct {
	Seeds []uint64
	Chain *Chain
	// Diagnostics holds the warnings raised while parsing.
	Diagnostics diagnostic.Diagnostics
}

// Parse builds an Almanac from puzzle text. Every problem in the input is
// reported in the returned error, which matches the package's Err* values
// with errors.Is.
func Parse(input string) (*Almanac, error) {
	var diags diagnostic.Diagnostics

	blocks := common.Blocks(input)

	first, ok := common.First(blocks)
	if !ok {
		diags.AddError(ErrMalformedSeedList, seedsSection, 0, "input is empty")
		return nil, diags.Error()
	}

	seeds := parseSeeds(first, &diags)

	maps := make([]*Map, 0, len(blocks)-1)
	for _, b := range blocks[1:] {
		if m := parseMap(b, &diags); m != nil {
			maps = append(maps, m)
		}
	}

	for i := 1; i < len(maps); i++ {
		if prev, m := maps[i-1], maps[i]; m.Source() != prev.Destination() {
			diags.AddError(ErrBrokenChain, m.Name(), 0,
				"map starts at %q but %s ends at %q", m.Source(), prev.Name(), prev.Destination())
		}
	}

	if diags.HasErrors() {
		return nil, diags.Error()
	}

	return &Almanac{
		Seeds:       seeds,
		Chain:       NewChain(maps...),
		Diagnostics: diags,
	}, nil
}

func parseSeeds(b common.Block, diags *diagnostic.Diagnostics) []uint64 {
	rest, ok := strings.CutPrefix(b.Lines[0], seedsPrefix)
	if !ok {
		diags.AddError(ErrMalformedSeedList, seedsSection, b.Line, "expected %q, got %q", seedsPrefix, b.Lines[0])
		return nil
	}

	if len(b.Lines) > 1 {
		diags.AddError(ErrMalformedSeedList, seedsSection, b.Line+1,
			"unexpected line after seeds: %q", b.Lines[1])
	}

	seeds, err := common.ParseInts[uint64](rest)
	if err != nil {
		diags.AddError(ErrMalformedSeedList, seedsSection, b.Line, "%v", err)
		return nil
	}

	if common.IsEmpty(seeds) {
		diags.AddError(ErrMalformedSeedList, seedsSection, b.Line, "no seeds listed")
	}

	return seeds
}

// parseMap returns nil when the section is unusable; the reason is recorded in diags.
func parseMap(b common.Block, diags *diagnostic.Diagnostics) *Map {
	name, ok := parseHeader(b.Lines[0])
	if !ok {
		diags.AddError(ErrMissingSection, "", b.Line,
			"expected a \"<src>-to-<dst> map:\" header, got %q", b.Lines[0])
		return nil
	}

	entries := make([]Entry, 0, len(b.Lines)-1)
	valid := true

	for i, line := range b.Lines[1:] {
		lineNo := b.Line + 1 + i

		fields := strings.Fields(line)
		if len(fields) != 3 {
			diags.AddError(ErrMalformedEntry, name, lineNo, "expected 3 fields, got %d in %q", len(fields), line)
			valid = false

			continue
		}

		nums, err := common.ParseInts[uint64](line)
		if err != nil {
			diags.AddError(ErrMalformedEntry, name, lineNo, "%v", err)
			valid = false

			continue
		}

		if nums[2] == 0 {
			diags.AddError(ErrMalformedEntry, name, lineNo, "zero length in %q", line)
			valid = false

			continue
		}

		entries = append(entries, NewEntry(nums[0], nums[1], nums[2]))
	}

	if common.IsEmpty(entries) && valid {
		diags.AddWarning(name, b.Line, "map has no entries, keys pass through unchanged")
	}

	m, err := NewMap(name, entries)
	if err != nil {
		diags.AddError(err, name, b.Line, "entries rejected")
		return nil
	}

	if !valid {
		return nil
	}

	return m
}

func parseHeader(line string) (string, bool) {
	name, ok := strings.CutSuffix(strings.TrimSpace(line), headerSuffix)
	if !ok {
		return "", false
	}

	src, dst, ok := strings.Cut(name, "-to-")
	if !ok || src == "" || dst == "" || strings.ContainsAny(name, " \t") {
		return "", false
	}

	return name, true
}
