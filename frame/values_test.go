package frame

import (
	"reflect"
	"testing"
)

func TestEnsureList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []any
	}{
		{"empty slice", []any{}, []any{}},
		{"nil", nil, []any{nil}},
		{"empty string", "", []any{""}},
		{"string", "a", []any{"a"}},
		{"slice", []any{"a"}, []any{"a"}},
		{"typed slice", []string{"a", "b"}, []any{"a", "b"}},
		{"int slice", []int{1, 2}, []any{1, 2}},
		{"map", map[string]any{"a": 1}, []any{map[string]any{"a": 1}}},
		{"bytes are scalar", []byte("ab"), []any{[]byte("ab")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureList(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EnsureList(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"ints", 3, 3, true},
		{"ints differ", 3, 4, false},
		{"int vs int64", 3, int64(3), true},
		{"int vs float", 3, 3.0, true},
		{"floats close", 0.1 + 0.2, 0.3, true},
		{"strings", "w0", "w0", true},
		{"strings differ", "w0", "w1", false},
		{"string vs number", "3", 3, false},
		{"bools", true, true, true},
		{"bool vs number", true, 1, false},
		{"nils", nil, nil, true},
		{"nil vs value", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValuesEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("ValuesEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestOrderValues(t *testing.T) {
	tests := []struct {
		name   string
		a, b   any
		want   int
		wantOK bool
	}{
		{"int less", 2, 3, -1, true},
		{"int greater", 5, 3, 1, true},
		{"int equal", 3, 3, 0, true},
		{"int vs float", 2, 2.5, -1, true},
		{"strings", "s10", "s12", -1, true},
		{"strings equal", "s10", "s10", 0, true},
		{"mixed types", "a", 1, 0, false},
		{"bools unordered", true, false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := OrderValues(tt.a, tt.b)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("OrderValues(%v, %v) = %v, %v, want %v, %v",
					tt.a, tt.b, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
