package almanac

import "fmt"

// Range is the half-open key interval [Start, End).
type Range struct {
	Start uint64
	End   uint64
}

// RangeOf returns the range of length keys beginning at start.
func RangeOf(start, length uint64) Range {
	return Range{Start: start, End: start + length}
}

// Len returns the number of keys in the range.
func (r Range) Len() uint64 {
	if r.Empty() {
		return 0
	}

	return r.End - r.Start
}

// Empty reports whether the range holds no keys.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains reports whether key lies in the range.
func (r Range) Contains(key uint64) bool {
	return r.Start <= key && key < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
