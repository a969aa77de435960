// Package almanac implements the interval remapping pipeline behind the
// day 5 puzzle: sparse range translation tables chained together, through
// which single keys or whole key ranges are pushed.
//
// # Model
//
//   - Entry: a half-open domain interval [Start, Start+Len) plus a signed
//     Offset. A covered key k maps to k+Offset.
//   - Map: non-overlapping entries sorted by Start. Keys not covered by any
//     entry pass through unchanged.
//   - Chain: maps applied first to last.
//
// A Map answers two queries. Lookup translates one key using a binary
// search. LookupRange shatters a Range along entry boundaries and returns
// the translated pieces in input order; pieces not covered by any entry
// come back unchanged. The lengths of the pieces always sum to the length
// of the input range.
//
// # Input format
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each data line is "<dst_start> <src_start> <len>". Section order is
// chain order, and each map must start where the previous one ended.
//
// Everything is immutable once built, so concurrent queries need no locking.
package almanac
