// Package diagnostic collects the problems found while parsing and
// validating puzzle input, so a caller sees every malformed line at once
// instead of only the first one.
//
// Each Diagnostic carries a sentinel error; Diagnostics.Error joins them with
// errors.Join so callers can still match failure classes with errors.Is.
package diagnostic
