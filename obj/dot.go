package obj

import (
	"sort"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation access
//
// A path is a dot-separated list of mapping keys addressing a nested
// location: "user.address.city". The dot is the only separator; a key that
// itself contains a dot cannot be addressed (accepted format limitation,
// not validated).
// ─────────────────────────────────────────────────────────────────────────────

// Get resolves a dot-notation path in m and returns the value found there.
// The walk descends only through mappings whose current component is present
// with a non-nil value; on any failure — missing key, non-mapping
// intermediate, or a nil value at any step — fallback[0] (or nil) is
// returned instead.
//
// A nil value stored at the path is therefore indistinguishable from an
// absent path: both yield the fallback. Use Has to test for presence.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, path string, fallback ...any) any {
	current := any(m)
	for _, seg := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return fallbackOrNil(fallback)
		}
		val, present := node[seg]
		if !present || val == nil {
			return fallbackOrNil(fallback)
		}
		current = val
	}
	return current
}

func fallbackOrNil(fallback []any) any {
	if len(fallback) > 0 {
		return fallback[0]
	}
	return nil
}

// Set writes value at the dot-notation path in m, creating intermediate
// mappings as needed, and returns the same root it was given. A non-terminal
// component whose existing value is missing or not a mapping is overwritten
// with a fresh empty mapping before descending — Set never fails, it bulldozes.
//
// Set mutates m in place; the returned root aliases the argument. Passing a
// nil map panics, as any write to a nil map does.
func Set(m map[string]any, path string, value any) map[string]any {
	node := m
	segs := strings.Split(path, ".")
	for _, seg := range segs[:len(segs)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok || next == nil {
			next = make(map[string]any)
			node[seg] = next
		}
		node = next
	}
	node[segs[len(segs)-1]] = value
	return m
}

// Has reports whether the dot-notation path resolves through mappings to an
// existing key. Unlike Get, a key present with a nil value counts as
// present (though the walk cannot descend past it).
func Has(m map[string]any, path string) bool {
	segs := strings.Split(path, ".")
	current := any(m)
	for i, seg := range segs {
		node, ok := current.(map[string]any)
		if !ok {
			return false
		}
		val, present := node[seg]
		if !present {
			return false
		}
		if i == len(segs)-1 {
			return true
		}
		current = val
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Flatten / expand
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens a nested mapping into a single-level map keyed by the
// dot-joined path of every leaf. Only mappings are descended into; sequences
// and scalars are leaves even though a sequence is composite. A nil or empty
// input yields an empty (non-nil) map.
//
//	Dot(map[string]any{"a": 1, "b": map[string]any{"c": 2}})
//	// → {"a": 1, "b.c": 2}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	flattenInto("", m, out)
	return out
}

func flattenInto(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Keys returns the dot-joined path of every key reachable through mappings,
// in pre-order: a mapping's key is listed before the keys inside it.
// Branch paths are included, not just leaves. Go maps have no defined
// iteration order, so siblings are visited in sorted key order to keep the
// result deterministic.
//
//	Keys(map[string]any{"b": map[string]any{"c": 2}, "a": 1})
//	// → ["a", "b", "b.c"]
func Keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for _, k := range sortedKeys(m) {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			out = append(out, key)
			if nested, ok := m[k].(map[string]any); ok {
				walk(key, nested)
			}
		}
	}
	walk("", m)
	return out
}

// Undot expands a flat dot-notation map into a nested mapping by calling
// Set on a fresh root for every key. Keys are applied in sorted order (the
// deterministic stand-in for insertion order); when one key's path is a
// prefix of another's, the deeper key wins per Set's bulldozing rule, so
// {"a": 1, "a.b": 2} expands to {"a": {"b": 2}}.
func Undot(flat map[string]any) map[string]any {
	out := make(map[string]any, len(flat))
	for _, k := range sortedKeys(flat) {
		Set(out, k, flat[k])
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
