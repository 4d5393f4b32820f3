package truthy_test

import (
	"testing"

	"github.com/gustavodias/fnkit/internal/truthy"
)

func TestTruthy(t *testing.T) {
	n := 0
	m := 3
	cases := []struct {
		title    string
		value    any
		expected bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero int", 0, false},
		{"int", 7, true},
		{"zero float", 0.0, false},
		{"negative", -1, true},
		{"empty string", "", false},
		{"string", "x", true},
		{"empty slice", []any{}, false},
		{"slice", []any{1}, true},
		{"empty map", map[string]any{}, false},
		{"map", map[string]any{"a": 1}, true},
		{"nil pointer", (*int)(nil), false},
		{"pointer to zero", &n, false},
		{"pointer to value", &m, true},
		{"struct", struct{}{}, true},
	}
	for _, c := range cases {
		if got := truthy.Truthy(c.value); got != c.expected {
			t.Fatalf("%s: expected %v, got %v", c.title, c.expected, got)
		}
	}
}
