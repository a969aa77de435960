package almanac

import "errors"

var (
	// ErrMalformedSeedList is returned when the seeds line is absent, empty or non-numeric,
	// or when seeds read as ranges do not come in (start, length) pairs.
	ErrMalformedSeedList = errors.New("malformed seed list")
	// ErrMissingSection is returned when a map section has no "<src>-to-<dst> map:" header
	// or a required category is never reached.
	ErrMissingSection = errors.New("missing section")
	// ErrMalformedEntry is returned when a data line is not exactly three unsigned integers
	// or describes an empty interval.
	ErrMalformedEntry = errors.New("malformed entry")
	// ErrOverlappingEntries is returned when two entries of one map overlap.
	ErrOverlappingEntries = errors.New("overlapping entries")
	// ErrBrokenChain is returned when a map does not start where the previous map ended.
	ErrBrokenChain = errors.New("broken chain")
	// ErrNoSeeds is returned by the drivers when there is nothing to look up.
	ErrNoSeeds = errors.New("no seeds")
)
