package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// MinFunc returns the smallest key(e) over s, and false when s is empty.
func MinFunc[S ~[]E, E any, K number](s S, key func(E) K) (K, bool) {
	var best K
	if len(s) == 0 {
		return best, false
	}

	best = key(s[0])
	for _, e := range s[1:] {
		if k := key(e); k < best {
			best = k
		}
	}

	return best, true
}
