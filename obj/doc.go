// Package obj provides standalone, framework-agnostic helper functions for
// deeply nested map[string]any structures: cloning, merging, structural
// equality, dot-notation access, and flatten/expand, inspired by the
// object-traversal helpers of JavaScript utility kits (lodash's cloneDeep,
// merge, get/set, isEqual).
//
// # Plain values
//
// Every function operates on "plain values": scalars (strings, numbers,
// booleans, nil, time.Time), sequences ([]any), and mappings
// (map[string]any). Values built by encoding/json unmarshalling into `any`
// have exactly this shape.
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	obj.Get(m, "user.address.city")           // → "London"
//	obj.Set(m, "user.address.postcode", "EC1")
//	flat := obj.Dot(m)                        // → {"user.name": "Alice", ...}
//	copy := obj.Clone(m)                      // fully independent copy
//
// # Ownership
//
// All functions return freshly allocated maps and slices, with two
// deliberate exceptions: Set mutates and returns the root it was given, and
// Merge may share unmerged subtrees with its inputs (it never mutates them).
//
// # Limitations
//
// None of the recursive functions detect cycles; a value that contains
// itself overflows the stack. Dot paths use "." as the only separator, so a
// key containing a dot cannot be addressed individually.
package obj
