package query

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyFilter is returned when a filter value is an operator map with
	// no operators.
	ErrEmptyFilter = errors.New("empty filter")

	// ErrInvalidFilter is returned when a filter handed to IsSubfilter
	// carries operator keys outside the comparable set.
	ErrInvalidFilter = errors.New("invalid filter")
)

// UnsupportedOperatorError is returned when an operator map uses keys outside
// the recognized operator set.
type UnsupportedOperatorError struct {
	Operators []string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator(s): [%s]", strings.Join(e.Operators, ", "))
}

// UnknownFieldError is returned when a query references a field that is
// neither a column nor a named index level.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}
