package common

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"only newlines", "\n\n", nil},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"inner blank", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.input))
		})
	}
}

func TestBlocks(t *testing.T) {
	input := "seeds: 1 2\n\n\na-to-b map:\n1 2 3\n  \nb-to-c map:\n"

	assert.Equal(t, []Block{
		{Line: 1, Lines: []string{"seeds: 1 2"}},
		{Line: 4, Lines: []string{"a-to-b map:", "1 2 3"}},
		{Line: 7, Lines: []string{"b-to-c map:"}},
	}, Blocks(input))

	assert.Nil(t, Blocks("\n \n"))
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt[int8]("-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), n)

	_, err = ParseInt[int8]("128")
	require.ErrorIs(t, err, strconv.ErrRange)

	u, err := ParseInt[uint64]("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u)

	_, err = ParseInt[uint64]("-1")
	require.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = ParseInt[int]("12a")
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestParseInts(t *testing.T) {
	got, err := ParseInts[int]("  0 3 -6\t9 ")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, -6, 9}, got)

	got, err = ParseInts[int]("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseInts[uint]("1 -2")
	require.Error(t, err)
}

func TestNumbers(t *testing.T) {
	assert.True(t, IsInRange(1, 1, 3))
	assert.True(t, IsInRange(1.0, 3.0, 3.0))
	assert.False(t, IsInRange(1, 4, 3))

	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, int64(5), Abs(int64(5)))

	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 7, GCD(7, 0))

	assert.Equal(t, 1, LCM[int]())
	assert.Equal(t, 36, LCM(12, 18))
	assert.Equal(t, uint64(60), LCM[uint64](2, 3, 4, 5))
}

func TestSlices(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))

	_, ok := First([]string(nil))
	assert.False(t, ok)

	s, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", s)

	_, ok = MinFunc([]string(nil), func(s string) int { return len(s) })
	assert.False(t, ok)

	n, ok := MinFunc([]string{"ccc", "a", "bb"}, func(s string) int { return len(s) })
	assert.True(t, ok)
	assert.Equal(t, 1, n)
}
