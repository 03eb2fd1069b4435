package obj

// ─────────────────────────────────────────────────────────────────────────────
// Shallow selection helpers
//
// These operate on top-level keys only and always return a fresh, non-nil
// map; a nil input is treated as empty rather than an error.
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new map containing the entries for which fn(key, value)
// returns true.
func Filter(m map[string]any, fn func(key string, value any) bool) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if fn(k, v) {
			out[k] = v
		}
	}
	return out
}

// Pick returns a new map containing only the named top-level keys that are
// present in m.
func Pick(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a shallow copy of m without the named top-level keys.
func Omit(m map[string]any, keys ...string) map[string]any {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// MapValues returns a new map with the same keys and each value replaced by
// fn(key, value).
func MapValues(m map[string]any, fn func(key string, value any) any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = fn(k, v)
	}
	return out
}
