package query

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/vegasq/frameq/frame"
)

// Filter maps field names to filter values, AND across fields. A value is a
// scalar (equality), a list (membership) or an operator map (see Op).
type Filter map[string]any

// Compare returns the boolean mask produced by comparing every value of the
// series against the filter value.
//
//   - scalar: elementwise equality
//   - list-like: membership
//   - operator map: one mask per operator, AND-ed together
//
// An empty operator map fails with ErrEmptyFilter; unrecognized operator
// keys fail with UnsupportedOperatorError.
func Compare(s *frame.Series, value any) (*frame.Mask, error) {
	if ops, ok := value.(map[string]any); ok {
		return compareOps(s, ops)
	}
	if items, ok := frame.AsList(value); ok {
		return evalOp(s, OpIsin, items)
	}
	return evalOp(s, OpEq, value)
}

func compareOps(s *frame.Series, ops map[string]any) (*frame.Mask, error) {
	if len(ops) == 0 {
		return nil, ErrEmptyFilter
	}
	var unsupported []string
	for key := range ops {
		if !Op(key).IsValid() {
			unsupported = append(unsupported, key)
		}
	}
	if len(unsupported) > 0 {
		sort.Strings(unsupported)
		return nil, &UnsupportedOperatorError{Operators: unsupported}
	}

	var mask *frame.Mask
	for _, op := range Ops {
		operand, ok := ops[string(op)]
		if !ok {
			continue
		}
		m, err := evalOp(s, op, operand)
		if err != nil {
			return nil, err
		}
		if mask == nil {
			mask = m
		} else {
			mask.And(m)
		}
	}
	return mask, nil
}

// evalOp evaluates a single operator elementwise over the series.
func evalOp(s *frame.Series, op Op, operand any) (*frame.Mask, error) {
	mask := frame.NewMask(s.Len())
	switch op {
	case OpEq:
		for i, v := range s.Values() {
			if frame.ValuesEqual(v, operand) {
				mask.Set(i)
			}
		}
	case OpNe:
		for i, v := range s.Values() {
			if !frame.ValuesEqual(v, operand) {
				mask.Set(i)
			}
		}
	case OpLe, OpLt, OpGe, OpGt:
		for i, v := range s.Values() {
			cmp, ok := frame.OrderValues(v, operand)
			if !ok {
				continue
			}
			switch op {
			case OpLe:
				ok = cmp <= 0
			case OpLt:
				ok = cmp < 0
			case OpGe:
				ok = cmp >= 0
			case OpGt:
				ok = cmp > 0
			}
			if ok {
				mask.Set(i)
			}
		}
	case OpIsin:
		items, ok := frame.AsList(operand)
		if !ok {
			return nil, fmt.Errorf("isin operand must be list-like, got %T", operand)
		}
		for i, v := range s.Values() {
			for _, item := range items {
				if frame.ValuesEqual(v, item) {
					mask.Set(i)
					break
				}
			}
		}
	case OpRegex:
		pattern, ok := operand.(string)
		if !ok {
			return nil, fmt.Errorf("regex operand must be a string, got %T", operand)
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex operand: %w", err)
		}
		for i, v := range s.Values() {
			if str, isStr := v.(string); isStr && re.MatchString(str) {
				mask.Set(i)
			}
		}
	default:
		return nil, &UnsupportedOperatorError{Operators: []string{string(op)}}
	}
	return mask, nil
}

// FilterFrame returns the frame filtered by the query list: OR across
// filters, AND within each filter. Field names resolve to columns first,
// then to named index levels. An empty query list returns the frame
// unmodified; an empty filter inside the list matches every row, making the
// whole OR true. Row order and index labels are always preserved.
func FilterFrame(f *frame.Frame, queryList []Filter) (*frame.Frame, error) {
	mask, err := andOrMask(queryList, func(q Filter) ([]*frame.Mask, error) {
		masks := make([]*frame.Mask, 0, len(q))
		for _, key := range sortedKeys(q) {
			s, ok := f.Column(key)
			if !ok {
				s, ok = f.Index().Level(key)
			}
			if !ok {
				return nil, &UnknownFieldError{Field: key}
			}
			m, err := Compare(s, q[key])
			if err != nil {
				return nil, err
			}
			masks = append(masks, m)
		}
		return masks, nil
	})
	if err != nil {
		return nil, err
	}
	if mask == nil {
		return f, nil
	}
	return f.Select(mask), nil
}

// FilterSeries returns the series filtered by the query list. Field names
// resolve to named index levels only.
func FilterSeries(s *frame.Series, queryList []Filter) (*frame.Series, error) {
	mask, err := andOrMask(queryList, func(q Filter) ([]*frame.Mask, error) {
		masks := make([]*frame.Mask, 0, len(q))
		for _, key := range sortedKeys(q) {
			level, ok := s.Index().Level(key)
			if !ok {
				return nil, &UnknownFieldError{Field: key}
			}
			m, err := Compare(level, q[key])
			if err != nil {
				return nil, err
			}
			masks = append(masks, m)
		}
		return masks, nil
	})
	if err != nil {
		return nil, err
	}
	if mask == nil {
		return s, nil
	}
	return s.Select(mask), nil
}

// andOrMask ORs together the AND of the masks produced for each filter in
// the query list. A nil result means no filtering at all: either the list
// was empty, or it contained an empty filter, whose vacuous AND matches
// every row and makes the whole OR true.
func andOrMask(queryList []Filter, masksFor func(Filter) ([]*frame.Mask, error)) (*frame.Mask, error) {
	var orMask *frame.Mask
	for _, q := range queryList {
		if len(q) == 0 {
			return nil, nil
		}
		masks, err := masksFor(q)
		if err != nil {
			return nil, err
		}
		andMask := masks[0]
		for _, m := range masks[1:] {
			andMask.And(m)
		}
		if orMask == nil {
			orMask = andMask
		} else {
			orMask.Or(andMask)
		}
	}
	return orMask, nil
}

func sortedKeys(q Filter) []string {
	keys := make([]string, 0, len(q))
	for key := range q {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
