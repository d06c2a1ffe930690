package frame

import (
	"errors"
	"fmt"
)

// ConcatOptions controls Concat and ConcatSeries.
type ConcatOptions struct {
	// Keys, when set, must contain one value per input. The values become an
	// additional outermost index level, labelling every row of the
	// corresponding input.
	Keys []any
	// Names holds the name of the key level. Only meaningful with Keys.
	Names []string
	// KeepEmpty disables the default behaviour of dropping empty inputs
	// (empty inputs are always kept when every input is empty).
	KeepEmpty bool
}

// Concat concatenates frames while preserving index-level identity: the
// levels of every input are matched by name and reordered to the first
// input's level order before the rows are appended. Blind positional
// concatenation of differently ordered indexes is a silent corruption, which
// is exactly what this helper exists to prevent.
//
// All inputs must have the same columns as the first input.
func Concat(frames []*Frame, opts *ConcatOptions) (*Frame, error) {
	if opts == nil {
		opts = &ConcatOptions{}
	}
	if len(frames) == 0 {
		return nil, errors.New("nothing to concatenate")
	}

	order := frames[0].Index().Names()
	columns := frames[0].Columns()
	ordered := make([]*Frame, len(frames))
	for i, f := range frames {
		if err := sameColumns(columns, f.Columns()); err != nil {
			return nil, err
		}
		ix, err := reorderTo(f.Index(), order)
		if err != nil {
			return nil, err
		}
		ordered[i] = &Frame{names: f.names, columns: f.columns, index: ix}
	}

	keep, keys, err := dropEmpty(ordered, opts, func(f *Frame) bool { return f.IsEmpty() })
	if err != nil {
		return nil, err
	}

	total := 0
	for _, f := range keep {
		total += f.Len()
	}
	cols := make([]Column, len(columns))
	for ci, name := range columns {
		values := make([]any, 0, total)
		for _, f := range keep {
			values = append(values, f.columns[name]...)
		}
		cols[ci] = Column{Name: name, Values: values}
	}

	indexes := make([]*Index, len(keep))
	lens := make([]int, len(keep))
	for i, f := range keep {
		indexes[i] = f.index
		lens[i] = f.Len()
	}
	index, err := concatIndexes(indexes, lens, keys, opts.Names)
	if err != nil {
		return nil, err
	}
	return NewWithIndex(cols, index)
}

// ConcatSeries concatenates series the same way Concat concatenates frames.
// The result keeps the first input's name if all names agree, otherwise the
// name is dropped.
func ConcatSeries(series []*Series, opts *ConcatOptions) (*Series, error) {
	if opts == nil {
		opts = &ConcatOptions{}
	}
	if len(series) == 0 {
		return nil, errors.New("nothing to concatenate")
	}

	order := series[0].Index().Names()
	ordered := make([]*Series, len(series))
	for i, s := range series {
		ix, err := reorderTo(s.Index(), order)
		if err != nil {
			return nil, err
		}
		ordered[i] = &Series{name: s.name, values: s.values, index: ix}
	}

	keep, keys, err := dropEmpty(ordered, opts, func(s *Series) bool { return s.IsEmpty() })
	if err != nil {
		return nil, err
	}

	name := keep[0].name
	var values []any
	indexes := make([]*Index, len(keep))
	lens := make([]int, len(keep))
	for i, s := range keep {
		if s.name != name {
			name = ""
		}
		values = append(values, s.values...)
		indexes[i] = s.index
		lens[i] = s.Len()
	}
	if values == nil {
		values = []any{}
	}
	index, err := concatIndexes(indexes, lens, keys, opts.Names)
	if err != nil {
		return nil, err
	}
	return NewSeriesWithIndex(name, values, index)
}

// Label is one (name, value) condition attached to a concatenated tuple.
type Label struct {
	Name  string
	Value any
}

// Tuple is a single value together with the index conditions identifying it.
type Tuple struct {
	Value      any
	Conditions []Label
}

// ConcatTuples builds a series from tuples of (value, conditions): every
// tuple becomes one row, its conditions becoming the index levels. The
// condition names must be the same for every tuple.
func ConcatTuples(tuples []Tuple) (*Series, error) {
	series := make([]*Series, len(tuples))
	for i, tuple := range tuples {
		levels := make([]Level, len(tuple.Conditions))
		for li, cond := range tuple.Conditions {
			levels[li] = Level{Name: cond.Name, Values: []any{cond.Value}}
		}
		index, err := NewIndex(levels)
		if err != nil {
			return nil, err
		}
		s, err := NewSeriesWithIndex("", []any{tuple.Value}, index)
		if err != nil {
			return nil, err
		}
		series[i] = s
	}
	return ConcatSeries(series, nil)
}

func reorderTo(ix *Index, order []string) (*Index, error) {
	if sameNames(ix.Names(), order) {
		return ix, nil
	}
	return ix.Reorder(order)
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameColumns(want, got []string) error {
	if !sameNames(want, got) {
		return fmt.Errorf("columns mismatch: want %v, got %v", want, got)
	}
	return nil
}

// dropEmpty removes empty inputs (and their keys) unless every input is
// empty or KeepEmpty is set.
func dropEmpty[T any](items []T, opts *ConcatOptions, empty func(T) bool) ([]T, []any, error) {
	keys := opts.Keys
	if keys != nil && len(keys) != len(items) {
		return nil, nil, fmt.Errorf("got %d keys for %d objects", len(keys), len(items))
	}
	if opts.KeepEmpty {
		return items, keys, nil
	}
	allEmpty := true
	for _, item := range items {
		if !empty(item) {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return items, keys, nil
	}
	var keep []T
	var keepKeys []any
	for i, item := range items {
		if empty(item) {
			continue
		}
		keep = append(keep, item)
		if keys != nil {
			keepKeys = append(keepKeys, keys[i])
		}
	}
	return keep, keepKeys, nil
}

// concatIndexes appends the levels of the given indexes, which must already
// share the same level order, optionally prepending a key level.
func concatIndexes(indexes []*Index, lens []int, keys []any, names []string) (*Index, error) {
	total := 0
	for _, n := range lens {
		total += n
	}
	first := indexes[0]
	levels := make([]Level, 0, first.NumLevels()+1)
	if keys != nil {
		name := ""
		if len(names) > 0 {
			name = names[0]
		}
		values := make([]any, 0, total)
		for i, ix := range indexes {
			for j := 0; j < ix.Len(); j++ {
				values = append(values, keys[i])
			}
		}
		levels = append(levels, Level{Name: name, Values: values})
	}
	for li := 0; li < first.NumLevels(); li++ {
		values := make([]any, 0, total)
		for _, ix := range indexes {
			values = append(values, ix.levels[li].Values...)
		}
		levels = append(levels, Level{Name: first.levels[li].Name, Values: values})
	}
	return NewIndex(levels)
}
