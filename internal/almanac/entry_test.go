package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntry(t *testing.T) {
	up := NewEntry(52, 50, 48)
	assert.Equal(t, Entry{Start: 50, Len: 48, Offset: 2}, up)
	assert.Equal(t, uint64(98), up.End())

	down := NewEntry(50, 98, 2)
	assert.Equal(t, Entry{Start: 98, Len: 2, Offset: -48}, down)
}

func TestEntryCovers(t *testing.T) {
	e := NewEntry(52, 50, 48)

	tests := []struct {
		key  uint64
		want bool
	}{
		{49, false},
		{50, true},
		{79, true},
		{97, true},
		{98, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Covers(tt.key), "key %d", tt.key)
	}
}

func TestEntryTranslate(t *testing.T) {
	assert.Equal(t, uint64(81), NewEntry(52, 50, 48).Translate(79))
	assert.Equal(t, uint64(50), NewEntry(50, 98, 2).Translate(98))
	assert.Equal(t, uint64(0), NewEntry(0, 15, 37).Translate(15))
}

func TestRange(t *testing.T) {
	r := RangeOf(79, 14)

	assert.Equal(t, Range{Start: 79, End: 93}, r)
	assert.Equal(t, uint64(14), r.Len())
	assert.True(t, r.Contains(79))
	assert.True(t, r.Contains(92))
	assert.False(t, r.Contains(93))
	assert.False(t, r.Empty())
	assert.Equal(t, "[79, 93)", r.String())

	assert.True(t, Range{Start: 5, End: 5}.Empty())
	assert.Equal(t, uint64(0), Range{Start: 7, End: 3}.Len())
}
