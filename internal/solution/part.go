package solution

//go:generate go tool stringer -type=Part -linecomment -output=part_string.go

// Part selects one of the two answers of a day.
type Part int

const (
	_     Part = iota // skip zero value, it marks an unset part
	Part1             // part1
	Part2             // part2
)

// Parts lists every part in order.
var Parts = []Part{Part1, Part2}
