package obj_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/NiketaJain/go-powerkit/obj"
)

func assertDeepEqual(t *testing.T, got, want any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// ─── Clone ────────────────────────────────────────────────────────────────────

func TestCloneScalars(t *testing.T) {
	for _, v := range []any{nil, "hello", 42, 3.14, true} {
		if got := obj.Clone(v); got != v {
			t.Fatalf("Clone(%v) = %v", v, got)
		}
	}
}

func TestCloneTime(t *testing.T) {
	now := time.Now()
	got, ok := obj.Clone(now).(time.Time)
	if !ok || !got.Equal(now) {
		t.Fatalf("Clone(time) = %v; want %v", got, now)
	}
}

func TestCloneIsStructurallyEqual(t *testing.T) {
	src := map[string]any{
		"name":  "Alice",
		"tags":  []any{"a", "b", map[string]any{"x": 1}},
		"inner": map[string]any{"deep": map[string]any{"n": 42}},
	}
	assertDeepEqual(t, obj.Clone(src), src)
	if !obj.Equal(obj.Clone(src), src) {
		t.Fatal("Clone is not Equal to its source")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	src := map[string]any{
		"inner": map[string]any{"n": 1},
		"seq":   []any{1, 2, 3},
	}
	clone := obj.Clone(src).(map[string]any)

	clone["inner"].(map[string]any)["n"] = 99
	clone["seq"].([]any)[0] = 99
	if src["inner"].(map[string]any)["n"] != 1 {
		t.Fatal("mutating clone's nested map affected the source")
	}
	if src["seq"].([]any)[0] != 1 {
		t.Fatal("mutating clone's sequence affected the source")
	}

	src["inner"].(map[string]any)["n"] = -1
	if clone["inner"].(map[string]any)["n"] != 99 {
		t.Fatal("mutating the source affected the clone")
	}
}

// ─── Merge ────────────────────────────────────────────────────────────────────

func TestMerge(t *testing.T) {
	got := obj.Merge(
		map[string]any{"a": 1, "b": map[string]any{"c": 2}},
		map[string]any{"b": map[string]any{"d": 3}, "e": 4},
	)
	want := map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2, "d": 3},
		"e": 4,
	}
	assertDeepEqual(t, got, want)
}

func TestMergeLaterWins(t *testing.T) {
	got := obj.Merge(
		map[string]any{"a": 1, "b": "old"},
		map[string]any{"b": "new"},
	)
	if got["a"] != 1 || got["b"] != "new" {
		t.Fatalf("Merge = %v", got)
	}
}

func TestMergeSequencesReplaceWholesale(t *testing.T) {
	got := obj.Merge(
		map[string]any{"tags": []any{"a", "b"}},
		map[string]any{"tags": []any{"c"}},
	)
	assertDeepEqual(t, got["tags"], []any{"c"})
}

func TestMergeMappingOverScalar(t *testing.T) {
	// A mapping replaces a scalar wholesale, and vice versa; recursion only
	// happens when both sides are mappings.
	got := obj.Merge(
		map[string]any{"k": 1},
		map[string]any{"k": map[string]any{"n": 2}},
		map[string]any{"k": "scalar again"},
	)
	if got["k"] != "scalar again" {
		t.Fatalf("Merge k = %v", got["k"])
	}
}

func TestMergeSkipsNilInputs(t *testing.T) {
	got := obj.Merge(nil, map[string]any{"a": 1}, nil)
	assertDeepEqual(t, got, map[string]any{"a": 1})
}

func TestMergeNoArgsReturnsEmpty(t *testing.T) {
	got := obj.Merge()
	if got == nil || len(got) != 0 {
		t.Fatalf("Merge() = %v; want empty map", got)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	a := map[string]any{"nested": map[string]any{"x": 1}}
	b := map[string]any{"nested": map[string]any{"y": 2}}
	got := obj.Merge(a, b)

	if len(a["nested"].(map[string]any)) != 1 {
		t.Fatal("Merge mutated its first input")
	}
	if len(b["nested"].(map[string]any)) != 1 {
		t.Fatal("Merge mutated its second input")
	}

	got["nested"].(map[string]any)["z"] = 3
	if obj.Has(a, "nested.z") || obj.Has(b, "nested.z") {
		t.Fatal("mutating a merged branch affected an input")
	}
}

// ─── Equal ────────────────────────────────────────────────────────────────────

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"nils", nil, nil, true},
		{"nil vs value", nil, 1, false},
		{"value vs nil", map[string]any{}, nil, false},
		{"scalars", "x", "x", true},
		{"scalar mismatch", "x", "y", false},
		{"kind mismatch int vs string", 1, "1", false},
		{"kind mismatch map vs seq", map[string]any{}, []any{}, false},
		{
			"equal mappings",
			map[string]any{"a": 1, "b": map[string]any{"c": 2}},
			map[string]any{"b": map[string]any{"c": 2}, "a": 1},
			true,
		},
		{
			"value mismatch",
			map[string]any{"a": 1},
			map[string]any{"a": 2},
			false,
		},
		{
			"extra key",
			map[string]any{"a": 1},
			map[string]any{"a": 1, "b": 2},
			false,
		},
		{"equal sequences", []any{1, "two", 3.0}, []any{1, "two", 3.0}, true},
		{"sequence order matters", []any{1, 2}, []any{2, 1}, false},
		{"sequence length", []any{1}, []any{1, 1}, false},
		{
			"nested",
			map[string]any{"s": []any{map[string]any{"k": true}}},
			map[string]any{"s": []any{map[string]any{"k": true}}},
			true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := obj.Equal(tc.a, tc.b); got != tc.want {
				t.Fatalf("Equal(%v, %v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestEqualTimeByInstant(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	a := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	b := a.In(loc)
	if !obj.Equal(a, b) {
		t.Fatal("same instant in different locations should be Equal")
	}
	if obj.Equal(a, a.Add(time.Second)) {
		t.Fatal("different instants should not be Equal")
	}
}

// ─── Filter / Pick / Omit / MapValues ────────────────────────────────────────

func TestFilter(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2, "c": 3}
	got := obj.Filter(m, func(_ string, v any) bool { return v.(int) > 1 })
	assertDeepEqual(t, got, map[string]any{"b": 2, "c": 3})
}

func TestFilterNilInput(t *testing.T) {
	got := obj.Filter(nil, func(string, any) bool { return true })
	if got == nil || len(got) != 0 {
		t.Fatalf("Filter(nil) = %v; want empty map", got)
	}
}

func TestPick(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2, "c": 3}
	got := obj.Pick(m, "a", "c", "missing")
	assertDeepEqual(t, got, map[string]any{"a": 1, "c": 3})
}

func TestOmit(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2, "c": 3}
	got := obj.Omit(m, "b")
	assertDeepEqual(t, got, map[string]any{"a": 1, "c": 3})
}

func TestMapValues(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2}
	got := obj.MapValues(m, func(_ string, v any) any { return v.(int) * 10 })
	assertDeepEqual(t, got, map[string]any{"a": 10, "b": 20})
}
