package frame

import (
	"fmt"
	"strings"
)

// Level is one level of a row index: a name (possibly empty for the default
// positional index) and one label per row.
type Level struct {
	Name   string
	Values []any
}

// Index identifies the rows of a Frame or Series through one or more ordered
// levels. All levels have the same length.
type Index struct {
	levels []Level
	n      int
}

// NewIndex creates an index from the given levels. All levels must have the
// same number of values.
func NewIndex(levels []Level) (*Index, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: index requires at least one level", ErrLengthMismatch)
	}
	n := len(levels[0].Values)
	for _, level := range levels[1:] {
		if len(level.Values) != n {
			return nil, fmt.Errorf("%w: level %q has %d values, want %d",
				ErrLengthMismatch, level.Name, len(level.Values), n)
		}
	}
	copied := make([]Level, len(levels))
	copy(copied, levels)
	return &Index{levels: copied, n: n}, nil
}

// RangeIndex creates the default positional index: a single unnamed level
// with labels 0..n-1.
func RangeIndex(n int) *Index {
	values := make([]any, n)
	for i := range values {
		values[i] = i
	}
	return &Index{levels: []Level{{Values: values}}, n: n}
}

// Len returns the number of rows identified by the index.
func (ix *Index) Len() int {
	return ix.n
}

// NumLevels returns the number of levels.
func (ix *Index) NumLevels() int {
	return len(ix.levels)
}

// Names returns the level names in order. Unnamed levels yield empty strings.
func (ix *Index) Names() []string {
	names := make([]string, len(ix.levels))
	for i, level := range ix.levels {
		names[i] = level.Name
	}
	return names
}

// Level returns the named level as a Series, or false if no level has that
// name. Unnamed levels are not addressable.
func (ix *Index) Level(name string) (*Series, bool) {
	if name == "" {
		return nil, false
	}
	for _, level := range ix.levels {
		if level.Name == name {
			return &Series{name: level.Name, values: level.Values, index: ix}, true
		}
	}
	return nil, false
}

// Select returns a new index containing only the rows selected by the mask,
// in their original order.
func (ix *Index) Select(m *Mask) *Index {
	levels := make([]Level, len(ix.levels))
	for li, level := range ix.levels {
		values := make([]any, 0, m.Count())
		for i := 0; i < ix.n; i++ {
			if m.Test(i) {
				values = append(values, level.Values[i])
			}
		}
		levels[li] = Level{Name: level.Name, Values: values}
	}
	return &Index{levels: levels, n: m.Count()}
}

// Reorder returns a new index with the levels rearranged to the given name
// order. The order must list every level of the index exactly once.
func (ix *Index) Reorder(order []string) (*Index, error) {
	if len(order) != len(ix.levels) {
		return nil, fmt.Errorf("%w: length of order must be same as number of levels (%d), got %d",
			ErrIncompatibleLevels, len(ix.levels), len(order))
	}
	var missing []string
	levels := make([]Level, 0, len(order))
	for _, name := range order {
		level, ok := ix.findLevel(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		levels = append(levels, level)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: levels not found: %s",
			ErrIncompatibleLevels, strings.Join(missing, ", "))
	}
	return &Index{levels: levels, n: ix.n}, nil
}

func (ix *Index) findLevel(name string) (Level, bool) {
	for _, level := range ix.levels {
		if level.Name == name {
			return level, true
		}
	}
	return Level{}, false
}

// Equal reports whether two indexes have the same levels, names and labels.
func (ix *Index) Equal(other *Index) bool {
	if ix.n != other.n || len(ix.levels) != len(other.levels) {
		return false
	}
	for li, level := range ix.levels {
		if level.Name != other.levels[li].Name {
			return false
		}
		for i, v := range level.Values {
			if !ValuesEqual(v, other.levels[li].Values[i]) {
				return false
			}
		}
	}
	return true
}
