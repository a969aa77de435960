package almanac

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
)

// Map is one stage of the pipeline: sorted, non-overlapping entries with an
// identity fallback for keys no entry covers.
type Map struct {
	name    string
	entries []Entry
}

// NewMap copies and sorts entries by Start. Empty or overlapping entries, and
// entries reaching past the largest key, are rejected.
func NewMap(name string, entries []Entry) (*Map, error) {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(a.Start, b.Start)
	})

	for i, e := range sorted {
		if e.Len == 0 {
			return nil, fmt.Errorf("%w: %s: entry at %d has zero length", ErrMalformedEntry, name, e.Start)
		}

		if e.Start > math.MaxUint64-e.Len {
			return nil, fmt.Errorf("%w: %s: entry at %d with length %d overflows", ErrMalformedEntry, name, e.Start, e.Len)
		}

		if i > 0 && e.Start < sorted[i-1].End() {
			return nil, fmt.Errorf("%w: %s: %s and %s",
				ErrOverlappingEntries, name, sorted[i-1].Domain(), e.Domain())
		}
	}

	return &Map{name: name, entries: sorted}, nil
}

// Name returns the section name, e.g. "seed-to-soil".
func (m *Map) Name() string {
	return m.name
}

// Source returns the category the map translates from ("seed" for "seed-to-soil").
func (m *Map) Source() string {
	src, _, _ := strings.Cut(m.name, "-to-")
	return src
}

// Destination returns the category the map translates to ("soil" for "seed-to-soil").
func (m *Map) Destination() string {
	_, dst, ok := strings.Cut(m.name, "-to-")
	if !ok {
		return m.name
	}

	return dst
}

// Entries returns a copy of the sorted entries.
func (m *Map) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// search returns the index of the first entry ending after key.
func (m *Map) search(key uint64) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].End() > key
	})
}

// Lookup translates key through the entry covering it, or returns key unchanged.
func (m *Map) Lookup(key uint64) uint64 {
	if i := m.search(key); i < len(m.entries) && m.entries[i].Covers(key) {
		return m.entries[i].Translate(key)
	}

	return key
}

// LookupRange splits r along entry boundaries and translates each piece.
// Pieces come back in input order; uncovered pieces are returned unchanged.
func (m *Map) LookupRange(r Range) []Range {
	if r.Empty() {
		return nil
	}

	var out []Range

	cur := r.Start
	for i := m.search(cur); cur < r.End && i < len(m.entries); {
		e := m.entries[i]

		if cur < e.Start {
			end := min(e.Start, r.End)
			out = append(out, Range{Start: cur, End: end})
			cur = end

			continue
		}

		end := min(e.End(), r.End)
		start := e.Translate(cur)
		out = append(out, Range{Start: start, End: start + (end - cur)})
		cur = end
		i++
	}

	if cur < r.End {
		out = append(out, Range{Start: cur, End: r.End})
	}

	return out
}
