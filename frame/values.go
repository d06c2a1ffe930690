package frame

import (
	"math"
	"reflect"
)

// EnsureList always returns a list from the given argument. Slices and arrays
// (other than byte slices) are copied element by element; any other value,
// including nil and strings, becomes a single-element list.
func EnsureList(v any) []any {
	if items, ok := AsList(v); ok {
		return items
	}
	return []any{v}
}

// AsList reports whether v is list-like and, if so, returns its elements.
// Strings and byte slices are scalars, not lists.
func AsList(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		return items, true
	}
	if _, ok := v.([]byte); ok {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// toFloat64 converts a value to float64 if possible
func toFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// toString converts a value to string if possible
func toString(v any) (string, bool) {
	if str, ok := v.(string); ok {
		return str, true
	}
	return "", false
}

// toBool converts a value to bool if possible
func toBool(v any) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	return false, false
}

// numbersEqual compares two numbers using an epsilon scaled by the larger of
// 1.0 or the magnitudes involved, so mixed int/float columns compare sanely.
func numbersEqual(left, right float64) bool {
	const epsilon = 1e-9
	diff := math.Abs(left - right)
	maxAbs := math.Max(math.Abs(left), math.Abs(right))
	return diff < epsilon*math.Max(1.0, maxAbs)
}

// ValuesEqual reports whether two scalar values are equal, coercing numeric
// types before comparing. Values of incompatible types are never equal.
func ValuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	aNum, aIsNum := toFloat64(a)
	bNum, bIsNum := toFloat64(b)
	if aIsNum && bIsNum {
		return numbersEqual(aNum, bNum)
	}
	if aIsNum != bIsNum {
		return false
	}

	aStr, aIsStr := toString(a)
	bStr, bIsStr := toString(b)
	if aIsStr && bIsStr {
		return aStr == bStr
	}
	if aIsStr != bIsStr {
		return false
	}

	aBool, aIsBool := toBool(a)
	bBool, bIsBool := toBool(b)
	if aIsBool && bIsBool {
		return aBool == bBool
	}
	if aIsBool != bIsBool {
		return false
	}

	return reflect.DeepEqual(a, b)
}

// OrderValues compares two scalar values and returns -1, 0 or +1. The second
// return is false when the values are not mutually ordered (mixed or
// unsupported types).
func OrderValues(a, b any) (int, bool) {
	aNum, aIsNum := toFloat64(a)
	bNum, bIsNum := toFloat64(b)
	if aIsNum && bIsNum {
		if numbersEqual(aNum, bNum) {
			return 0, true
		}
		if aNum < bNum {
			return -1, true
		}
		return 1, true
	}

	aStr, aIsStr := toString(a)
	bStr, bIsStr := toString(b)
	if aIsStr && bIsStr {
		if aStr < bStr {
			return -1, true
		}
		if aStr > bStr {
			return 1, true
		}
		return 0, true
	}

	return 0, false
}
