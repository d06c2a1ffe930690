package frame

// Series is a named 1-D sequence of values identified by a row Index.
type Series struct {
	name   string
	values []any
	index  *Index
}

// NewSeries creates a series with the default positional index.
func NewSeries(name string, values []any) *Series {
	return &Series{name: name, values: values, index: RangeIndex(len(values))}
}

// NewSeriesWithIndex creates a series identified by the given index. The
// index must cover exactly one label per value.
func NewSeriesWithIndex(name string, values []any, index *Index) (*Series, error) {
	if index.Len() != len(values) {
		return nil, errLength(len(values), index.Len())
	}
	return &Series{name: name, values: values, index: index}, nil
}

// Name returns the series name.
func (s *Series) Name() string {
	return s.name
}

// Values returns the backing values. The slice must not be mutated.
func (s *Series) Values() []any {
	return s.values
}

// At returns the value at row i.
func (s *Series) At(i int) any {
	return s.values[i]
}

// Len returns the number of rows.
func (s *Series) Len() int {
	return len(s.values)
}

// IsEmpty reports whether the series has no rows.
func (s *Series) IsEmpty() bool {
	return len(s.values) == 0
}

// Index returns the row index.
func (s *Series) Index() *Index {
	return s.index
}

// Select returns a new series containing only the rows selected by the mask,
// in their original order.
func (s *Series) Select(m *Mask) *Series {
	values := make([]any, 0, m.Count())
	for i := range s.values {
		if m.Test(i) {
			values = append(values, s.values[i])
		}
	}
	return &Series{name: s.name, values: values, index: s.index.Select(m)}
}

// Equal reports whether two series have the same name, values and index.
func (s *Series) Equal(other *Series) bool {
	if s.name != other.name || len(s.values) != len(other.values) {
		return false
	}
	for i, v := range s.values {
		if !ValuesEqual(v, other.values[i]) {
			return false
		}
	}
	return s.index.Equal(other.index)
}
