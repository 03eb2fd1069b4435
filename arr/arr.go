package arr

import "math/rand"

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of items.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element of items.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Contains reports whether items contains value.
func Contains[T comparable](items []T, value T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Deduplication & set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence of each value.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueBy returns items with duplicates removed, where identity is the key
// extracted by fn. The first item for each key is kept.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Intersect returns the elements of a that also appear in b, in a's order,
// without duplicates.
func Intersect[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range Unique(a) {
		if _, found := set[item]; found {
			out = append(out, item)
		}
	}
	return out
}

// Diff returns the elements of a that do not appear in b, in a's order.
func Diff[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; !found {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size. The last group may be
// shorter. A non-positive size or empty input yields an empty result.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Compact returns items without zero values ("", 0, false, nil pointers).
func Compact[T comparable](items []T) []T {
	var zero T
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != zero {
			out = append(out, item)
		}
	}
	return out
}

// Flatten recursively flattens arbitrarily nested []any values into a
// single flat slice. Non-slice values become single elements.
func Flatten(items any) []any {
	out := make([]any, 0)
	var walk func(v any)
	walk = func(v any) {
		if nested, ok := v.([]any); ok {
			for _, elem := range nested {
				walk(elem)
			}
			return
		}
		out = append(out, v)
	}
	walk(items)
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Range returns the integers from start up to (exclusive) stop, advancing by
// step (default 1). A negative step counts down; a zero step yields an
// empty result.
//
//	Range(0, 5)        // → [0 1 2 3 4]
//	Range(5, 0, -2)    // → [5 3 1]
func Range(start, stop int, step ...int) []int {
	by := 1
	if len(step) > 0 {
		by = step[0]
	}
	if by == 0 {
		return []int{}
	}
	out := make([]int, 0)
	if by > 0 {
		for n := start; n < stop; n += by {
			out = append(out, n)
		}
	} else {
		for n := start; n > stop; n += by {
			out = append(out, n)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by the key extracted by fn, preserving item order
// within each group.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// CountBy counts items per key extracted by fn.
func CountBy[T any, K comparable](items []T, fn func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[fn(item)]++
	}
	return counts
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns n randomly selected items without replacement.
// If n >= len(items), a shuffled copy of all items is returned.
func Sample[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	s := Shuffle(items)
	if n >= len(s) {
		return s
	}
	return s[:n]
}
