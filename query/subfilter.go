package query

import (
	"fmt"

	"github.com/vegasq/frameq/frame"
)

// IsSubfilter reports whether left can only match a subset of the rows right
// matches. With strict set, left must additionally be more specific than
// right: at least one compared field must differ, or left must carry a field
// absent from right.
//
// Both filters are normalized first: scalars and lists become isin sets, and
// an eq operator is folded into isin (an eq value outside the isin set
// normalizes to the empty set, which matches nothing). Operator keys outside
// the comparable set fail with ErrInvalidFilter.
func IsSubfilter(left, right Filter, strict bool) (bool, error) {
	// keys present in left, but missing or different in right
	difference := make(map[string]bool, len(left))
	for key := range left {
		difference[key] = true
	}
	for key, rightValue := range right {
		leftValue, ok := left[key]
		if !ok {
			return false, nil
		}
		leftOps, err := normalize(leftValue)
		if err != nil {
			return false, err
		}
		rightOps, err := normalize(rightValue)
		if err != nil {
			return false, err
		}
		if strict && normalizedEqual(leftOps, rightOps) {
			delete(difference, key)
			continue
		}
		sub, err := isSubdict(leftOps, rightOps)
		if err != nil {
			return false, err
		}
		if !sub {
			return false, nil
		}
	}
	if strict {
		return len(difference) > 0, nil
	}
	return true, nil
}

// normalize canonicalizes a filter value to an operator map where equality
// is expressed through isin.
func normalize(value any) (map[Op]any, error) {
	ops, isMap := value.(map[string]any)
	if !isMap {
		if items, ok := frame.AsList(value); ok {
			return map[Op]any{OpIsin: items}, nil
		}
		return map[Op]any{OpIsin: []any{value}}, nil
	}

	out := make(map[Op]any, len(ops))
	for key, operand := range ops {
		out[Op(key)] = operand
	}
	if existing, ok := out[OpIsin]; ok {
		items, isList := frame.AsList(existing)
		if !isList {
			return nil, fmt.Errorf("isin operand must be list-like, got %T", existing)
		}
		out[OpIsin] = items
	}
	if eq, ok := out[OpEq]; ok {
		delete(out, OpEq)
		switch existing, has := out[OpIsin]; {
		case !has:
			out[OpIsin] = []any{eq}
		case containsValue(existing.([]any), eq):
			out[OpIsin] = []any{eq}
		default:
			// eq and isin are incompatible: nothing can match
			out[OpIsin] = []any{}
		}
	}
	return out, nil
}

// isSubdict reports whether, for every operator present in d2, d1 carries
// the same operator with an operand at least as restrictive.
func isSubdict(d1, d2 map[Op]any) (bool, error) {
	if err := validateComparable(d1); err != nil {
		return false, err
	}
	if err := validateComparable(d2); err != nil {
		return false, err
	}
	for _, op := range comparableOps {
		operand2, in2 := d2[op]
		if !in2 {
			continue
		}
		operand1, in1 := d1[op]
		if !in1 || !opSatisfies(op, operand1, operand2) {
			return false, nil
		}
	}
	return true, nil
}

// opSatisfies reports whether operand a is at least as restrictive as
// operand b under op. Both lt and gt intentionally use the non-strict
// comparison of their le/ge counterparts, behaviour pinned by the tests.
func opSatisfies(op Op, a, b any) bool {
	switch op {
	case OpNe:
		return frame.ValuesEqual(a, b)
	case OpLe, OpLt:
		cmp, ok := frame.OrderValues(a, b)
		return ok && cmp <= 0
	case OpGe, OpGt:
		cmp, ok := frame.OrderValues(a, b)
		return ok && cmp >= 0
	case OpIsin:
		items, ok := a.([]any)
		if !ok {
			return false
		}
		others, ok := b.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if !containsValue(others, item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func validateComparable(d map[Op]any) error {
	var invalid []string
	for op := range d {
		comparable := false
		for _, known := range comparableOps {
			if op == known {
				comparable = true
				break
			}
		}
		if !comparable {
			invalid = append(invalid, string(op))
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: operator keys %v are not comparable", ErrInvalidFilter, invalid)
	}
	return nil
}

// normalizedEqual reports whether two normalized operator maps are equal
// field-wise, with isin sets compared element by element.
func normalizedEqual(d1, d2 map[Op]any) bool {
	if len(d1) != len(d2) {
		return false
	}
	for op, a := range d1 {
		b, ok := d2[op]
		if !ok {
			return false
		}
		itemsA, listA := a.([]any)
		itemsB, listB := b.([]any)
		if listA != listB {
			return false
		}
		if listA {
			if len(itemsA) != len(itemsB) {
				return false
			}
			for i := range itemsA {
				if !frame.ValuesEqual(itemsA[i], itemsB[i]) {
					return false
				}
			}
			continue
		}
		if !frame.ValuesEqual(a, b) {
			return false
		}
	}
	return true
}

func containsValue(items []any, value any) bool {
	for _, item := range items {
		if frame.ValuesEqual(item, value) {
			return true
		}
	}
	return false
}
