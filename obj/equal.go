package obj

import "time"

// Equal reports deep structural equality of two plain values.
//
// Rules:
//   - nil equals only nil.
//   - Differing kinds (mapping vs sequence vs scalar) are unequal.
//   - Two mappings are equal iff they have exactly the same key set and
//     every key's values are recursively equal; key order is irrelevant.
//   - Two sequences are equal iff they have the same length and are
//     element-wise recursively equal, in order.
//   - time.Time values are compared by instant (time.Time.Equal), so a
//     Clone of a timestamp compares equal regardless of location.
//   - All other scalars are compared with ==; numeric values of different
//     Go types (int 1 vs float64 1) are unequal.
//
// Comparing two scalars of the same uncomparable type (e.g. two []string
// values, which fall outside the plain-value model) panics, as == does.
// Cycles are not detected.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, present := bv[k]
			if !present || !Equal(v, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}
