// Package arr provides standalone, framework-agnostic helper functions for
// Go slices, mirroring the array helpers of JavaScript utility kits
// (unique, chunk, compact, flatten, groupBy, and friends).
//
// All helpers are generic (Go 1.18+), operate on plain []T values, and are
// pure: inputs are never mutated, every transforming helper returns a new
// slice.
//
//	arr.Unique([]int{1, 2, 2, 3, 1})          // → [1 2 3]
//	arr.Chunk([]int{1, 2, 3, 4, 5}, 2)        // → [[1 2] [3 4] [5]]
//	arr.Compact([]string{"a", "", "b"})       // → [a b]
//	arr.Sum([]float64{1.5, 2.5})              // → 4
//
// Helpers are permissive on degenerate input: an empty slice in yields an
// empty result out, a non-positive chunk size yields no chunks, and the
// aggregation helpers report absence with a second boolean return rather
// than an error.
package arr
