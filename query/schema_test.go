package query

import (
	"reflect"
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []Filter
	}{
		{
			"single filter",
			`{"simulation_id": 1, "window": "w0"}`,
			[]Filter{{"simulation_id": 1.0, "window": "w0"}},
		},
		{
			"filter list",
			`[{"window": "w0"}, {"window": "w1", "trial": 0}]`,
			[]Filter{{"window": "w0"}, {"window": "w1", "trial": 0.0}},
		},
		{
			"operator map",
			`{"gid": {"ge": 3, "lt": 8}}`,
			[]Filter{{"gid": map[string]any{"ge": 3.0, "lt": 8.0}}},
		},
		{
			"list value",
			`{"window": ["w0", "w1"]}`,
			[]Filter{{"window": []any{"w0", "w1"}}},
		},
		{
			"empty filter",
			`{}`,
			[]Filter{{}},
		},
		{
			"empty list",
			`[]`,
			[]Filter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuery([]byte(tt.data))
			if err != nil {
				t.Fatalf("ParseQuery(%s) error = %v", tt.data, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseQuery(%s) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestParseQuery_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown operator", `{"gid": {"bogus": 1}}`},
		{"empty operator map", `{"gid": {}}`},
		{"scalar root", `42`},
		{"non-object in list", `[{"a": 1}, 2]`},
		{"regex must be string", `{"name": {"regex": 1}}`},
		{"isin must be array", `{"gid": {"isin": 3}}`},
		{"nested object value", `{"gid": {"isin": [{"a": 1}]}}`},
		{"malformed JSON", `{"gid": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseQuery([]byte(tt.data)); err == nil {
				t.Errorf("ParseQuery(%s) error = nil, want validation error", tt.data)
			}
		})
	}
}
