package almanac

// Entry maps the domain interval [Start, Start+Len) onto
// [Start+Offset, Start+Len+Offset).
type Entry struct {
	Start  uint64
	Len    uint64
	Offset int64
}

// NewEntry builds an entry from one "<dst> <src> <len>" data line.
func NewEntry(dst, src, length uint64) Entry {
	return Entry{Start: src, Len: length, Offset: int64(dst - src)}
}

// End returns the exclusive end of the domain interval.
func (e Entry) End() uint64 {
	return e.Start + e.Len
}

// Domain returns the domain interval as a Range.
func (e Entry) Domain() Range {
	return Range{Start: e.Start, End: e.End()}
}

// Covers reports whether key lies in the domain interval.
func (e Entry) Covers(key uint64) bool {
	return e.Start <= key && key < e.End()
}

// Translate maps a covered key. The result for an uncovered key is meaningless.
func (e Entry) Translate(key uint64) uint64 {
	return key + uint64(e.Offset)
}
