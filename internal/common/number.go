package common

import "golang.org/x/exp/constraints"

type number interface {
	constraints.Integer | constraints.Float
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of values, or 1 for no values.
func LCM[T constraints.Integer](values ...T) T {
	var lcm T = 1
	for _, v := range values {
		lcm = lcm / GCD(lcm, v) * v
	}

	return lcm
}
