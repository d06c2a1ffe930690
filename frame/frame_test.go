package frame

import (
	"errors"
	"reflect"
	"testing"
)

func mustFrame(t *testing.T, cols []Column) *Frame {
	t.Helper()
	f, err := New(cols)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		cols []Column
		want error
	}{
		{
			"length mismatch",
			[]Column{
				{Name: "a", Values: []any{1, 2}},
				{Name: "b", Values: []any{1}},
			},
			ErrLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cols)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("duplicate column", func(t *testing.T) {
		_, err := New([]Column{
			{Name: "a", Values: []any{1}},
			{Name: "a", Values: []any{2}},
		})
		if err == nil {
			t.Error("New() error = nil, want duplicate column error")
		}
	})
}

func TestFrame_Select(t *testing.T) {
	f := mustFrame(t, []Column{
		{Name: "gid", Values: []any{0, 2, 3, 7, 8}},
		{Name: "name", Values: []any{"a", "b", "c", "d", "e"}},
	})
	m := NewMask(5)
	m.Set(2)
	m.Set(3)

	got := f.Select(m)
	if got.Len() != 2 {
		t.Fatalf("Select() len = %d, want 2", got.Len())
	}
	gid, _ := got.Column("gid")
	if !ValuesEqual(gid.At(0), 3) || !ValuesEqual(gid.At(1), 7) {
		t.Errorf("Select() gid = %v", gid.Values())
	}
	// original row labels survive the selection
	labels := got.Index().levels[0].Values
	if !ValuesEqual(labels[0], 2) || !ValuesEqual(labels[1], 3) {
		t.Errorf("Select() index labels = %v", labels)
	}
}

func TestFrame_SetIndex(t *testing.T) {
	f := mustFrame(t, []Column{
		{Name: "simulation_id", Values: []any{0, 1}},
		{Name: "value", Values: []any{1.5, 2.5}},
	})

	got, err := f.SetIndex("simulation_id")
	if err != nil {
		t.Fatalf("SetIndex() error = %v", err)
	}
	if cols := got.Columns(); !reflect.DeepEqual(cols, []string{"value"}) {
		t.Errorf("SetIndex() columns = %v, want [value]", cols)
	}
	level, ok := got.Index().Level("simulation_id")
	if !ok {
		t.Fatal("SetIndex() did not create simulation_id level")
	}
	if !ValuesEqual(level.At(1), 1) {
		t.Errorf("SetIndex() level values = %v", level.Values())
	}

	if _, err := f.SetIndex("missing"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("SetIndex(missing) error = %v, want ErrUnknownColumn", err)
	}
}

func TestFrame_Head(t *testing.T) {
	f := mustFrame(t, []Column{{Name: "a", Values: []any{1, 2, 3}}})

	if got := f.Head(2); got.Len() != 2 {
		t.Errorf("Head(2) len = %d, want 2", got.Len())
	}
	if got := f.Head(10); got.Len() != 3 {
		t.Errorf("Head(10) len = %d, want 3", got.Len())
	}
}

func TestFrame_WithColumn(t *testing.T) {
	f := mustFrame(t, []Column{{Name: "a", Values: []any{1, 2}}})

	got, err := f.WithColumn("b", []any{"x", "y"})
	if err != nil {
		t.Fatalf("WithColumn() error = %v", err)
	}
	if cols := got.Columns(); !reflect.DeepEqual(cols, []string{"a", "b"}) {
		t.Errorf("WithColumn() columns = %v", cols)
	}

	if _, err := f.WithColumn("a", []any{0, 0}); err == nil {
		t.Error("WithColumn(a) error = nil, want duplicate column error")
	}
	if _, err := f.WithColumn("c", []any{0}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("WithColumn(c) error = %v, want ErrLengthMismatch", err)
	}
}

func TestFrame_Rows(t *testing.T) {
	f := mustFrame(t, []Column{
		{Name: "window", Values: []any{"w0", "w1"}},
		{Name: "value", Values: []any{1, 2}},
	})
	indexed, err := f.SetIndex("window")
	if err != nil {
		t.Fatalf("SetIndex() error = %v", err)
	}

	rows := indexed.Rows()
	want := []map[string]any{
		{"window": "w0", "value": 1},
		{"window": "w1", "value": 2},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Rows() = %v, want %v", rows, want)
	}

	// the default positional index stays out of the rows
	rows = f.Rows()
	if _, ok := rows[0][""]; ok {
		t.Error("Rows() leaked the unnamed index level")
	}
}

func TestFrame_Equal(t *testing.T) {
	a := mustFrame(t, []Column{{Name: "a", Values: []any{1, 2}}})
	b := mustFrame(t, []Column{{Name: "a", Values: []any{1, 2}}})
	c := mustFrame(t, []Column{{Name: "a", Values: []any{1, 3}}})

	if !a.Equal(b) {
		t.Error("Equal() = false for identical frames")
	}
	if a.Equal(c) {
		t.Error("Equal() = true for frames with different values")
	}
}
