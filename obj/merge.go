package obj

// Merge deep-merges values left to right into a freshly allocated map and
// returns it. For each key of each input: when both the accumulated value
// and the incoming value are mappings they are merged recursively (into a
// new map); otherwise the incoming value replaces the accumulated one
// wholesale. Sequences are never combined element-wise — a later []any
// replaces an earlier one just like a scalar does. nil inputs contribute
// nothing.
//
// Merge never mutates its inputs. The result may share unmerged subtrees
// with them; use Clone on the result if full isolation is needed.
//
//	obj.Merge(
//	    map[string]any{"a": 1, "b": map[string]any{"c": 2}},
//	    map[string]any{"b": map[string]any{"d": 3}, "e": 4},
//	)
//	// → {"a": 1, "b": {"c": 2, "d": 3}, "e": 4}
func Merge(values ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, src := range values {
		mergeInto(out, src)
	}
	return out
}

// mergeInto folds src into dst. dst is always a map owned by Merge, never a
// caller's map, so writing to it is safe; conflicting mapping branches are
// rebuilt into fresh maps to keep that invariant at every depth.
func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		if srcMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				fresh := make(map[string]any, len(dstMap)+len(srcMap))
				mergeInto(fresh, dstMap)
				mergeInto(fresh, srcMap)
				dst[k] = fresh
				continue
			}
		}
		dst[k] = v
	}
}
