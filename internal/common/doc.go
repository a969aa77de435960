// Package common holds small helpers shared by the day solvers: splitting
// puzzle input into lines and blank-line separated blocks, parsing integer
// fields, and a few generic numeric and slice utilities.
package common

// UnknownStr is the String() result for out-of-range enum values.
const UnknownStr = "unknown"
