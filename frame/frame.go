package frame

import "fmt"

// Column is a named column used to construct a Frame.
type Column struct {
	Name   string
	Values []any
}

// Frame is a labeled 2-D container: ordered named columns sharing a row Index.
type Frame struct {
	names   []string
	columns map[string][]any
	index   *Index
}

// New creates a frame with the default positional index. All columns must
// have the same length and distinct names.
func New(cols []Column) (*Frame, error) {
	n := 0
	if len(cols) > 0 {
		n = len(cols[0].Values)
	}
	return NewWithIndex(cols, RangeIndex(n))
}

// NewWithIndex creates a frame identified by the given index.
func NewWithIndex(cols []Column, index *Index) (*Frame, error) {
	f := &Frame{
		names:   make([]string, 0, len(cols)),
		columns: make(map[string][]any, len(cols)),
		index:   index,
	}
	for _, col := range cols {
		if _, dup := f.columns[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		if len(col.Values) != index.Len() {
			return nil, fmt.Errorf("%w: column %q has %d values, index has %d labels",
				ErrLengthMismatch, col.Name, len(col.Values), index.Len())
		}
		f.names = append(f.names, col.Name)
		f.columns[col.Name] = col.Values
	}
	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.index.Len()
}

// IsEmpty reports whether the frame has no rows.
func (f *Frame) IsEmpty() bool {
	return f.Len() == 0
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Column returns the named column as a Series, or false if it does not exist.
func (f *Frame) Column(name string) (*Series, bool) {
	values, ok := f.columns[name]
	if !ok {
		return nil, false
	}
	return &Series{name: name, values: values, index: f.index}, true
}

// Index returns the row index.
func (f *Frame) Index() *Index {
	return f.index
}

// Select returns a new frame containing only the rows selected by the mask,
// in their original order. Index labels of the kept rows are preserved.
func (f *Frame) Select(m *Mask) *Frame {
	out := &Frame{
		names:   f.Columns(),
		columns: make(map[string][]any, len(f.names)),
		index:   f.index.Select(m),
	}
	for _, name := range f.names {
		values := make([]any, 0, m.Count())
		src := f.columns[name]
		for i := 0; i < f.Len(); i++ {
			if m.Test(i) {
				values = append(values, src[i])
			}
		}
		out.columns[name] = values
	}
	return out
}

// Head returns a new frame containing at most the first n rows.
func (f *Frame) Head(n int) *Frame {
	if n >= f.Len() {
		return f
	}
	m := NewMask(f.Len())
	for i := 0; i < n; i++ {
		m.Set(i)
	}
	return f.Select(m)
}

// SetIndex returns a new frame with the named columns promoted to index
// levels, replacing the current index. The columns are removed from the
// column set.
func (f *Frame) SetIndex(names ...string) (*Frame, error) {
	levels := make([]Level, 0, len(names))
	promoted := make(map[string]bool, len(names))
	for _, name := range names {
		values, ok := f.columns[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		levels = append(levels, Level{Name: name, Values: values})
		promoted[name] = true
	}
	index, err := NewIndex(levels)
	if err != nil {
		return nil, err
	}
	out := &Frame{
		columns: make(map[string][]any, len(f.names)),
		index:   index,
	}
	for _, name := range f.names {
		if promoted[name] {
			continue
		}
		out.names = append(out.names, name)
		out.columns[name] = f.columns[name]
	}
	return out, nil
}

// WithColumn returns a new frame with the given column appended. The column
// must not exist yet and must have one value per row.
func (f *Frame) WithColumn(name string, values []any) (*Frame, error) {
	if _, dup := f.columns[name]; dup {
		return nil, fmt.Errorf("duplicate column %q", name)
	}
	if len(values) != f.Len() {
		return nil, fmt.Errorf("%w: column %q has %d values, frame has %d rows",
			ErrLengthMismatch, name, len(values), f.Len())
	}
	out := &Frame{
		names:   append(f.Columns(), name),
		columns: make(map[string][]any, len(f.names)+1),
		index:   f.index,
	}
	for _, col := range f.names {
		out.columns[col] = f.columns[col]
	}
	out.columns[name] = values
	return out, nil
}

// Rows returns the frame contents as one map per row, with named index
// levels included alongside the columns. The default positional index is
// omitted.
func (f *Frame) Rows() []map[string]any {
	rows := make([]map[string]any, f.Len())
	for i := range rows {
		row := make(map[string]any, len(f.names)+f.index.NumLevels())
		for _, level := range f.index.levels {
			if level.Name != "" {
				row[level.Name] = level.Values[i]
			}
		}
		for _, name := range f.names {
			row[name] = f.columns[name][i]
		}
		rows[i] = row
	}
	return rows
}

// Equal reports whether two frames have the same columns, values and index.
func (f *Frame) Equal(other *Frame) bool {
	if len(f.names) != len(other.names) || f.Len() != other.Len() {
		return false
	}
	for i, name := range f.names {
		if other.names[i] != name {
			return false
		}
		a, b := f.columns[name], other.columns[name]
		for j := range a {
			if !ValuesEqual(a[j], b[j]) {
				return false
			}
		}
	}
	return f.index.Equal(other.index)
}
