package obj

// Clone returns a deep copy of v. Mappings (map[string]any) and sequences
// ([]any) are freshly allocated at every level, so mutating any map or slice
// reachable from the clone never affects the original, and vice versa.
// Scalars are copied by value; time.Time is a value type, so a cloned
// timestamp is an independent copy of the same instant.
//
// Maps and slices of other concrete types (e.g. []string) are treated as
// scalars and returned as-is; convert to the plain-value shape first if deep
// isolation is required. Cyclic values are not detected and overflow the
// stack.
func Clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = Clone(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Clone(elem)
		}
		return out
	default:
		return v
	}
}
