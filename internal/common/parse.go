package common

import (
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ParseInt parses a base 10 integer that must fit T.
func ParseInt[T constraints.Integer](s string) (T, error) {
	var zero T

	bits := int(unsafe.Sizeof(zero)) * 8

	if minusOne := zero - 1; minusOne < zero {
		n, err := strconv.ParseInt(s, 10, bits)
		return T(n), err
	}

	n, err := strconv.ParseUint(s, 10, bits)

	return T(n), err
}

// ParseInts parses every whitespace separated field of s.
func ParseInts[T constraints.Integer](s string) ([]T, error) {
	fields := strings.Fields(s)
	out := make([]T, 0, len(fields))

	for _, f := range fields {
		n, err := ParseInt[T](f)
		if err != nil {
			return nil, err
		}

		out = append(out, n)
	}

	return out, nil
}
