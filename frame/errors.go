package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleLevels is returned when index levels of the inputs to a
	// concatenation (or an explicit reorder) cannot be matched, either because
	// the number of levels differs or because a level name is missing.
	ErrIncompatibleLevels = errors.New("incompatible index levels")

	// ErrLengthMismatch is returned when columns or index levels of differing
	// lengths are combined into one container.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrUnknownColumn is returned when a named column does not exist.
	ErrUnknownColumn = errors.New("unknown column")
)

func errLength(values, labels int) error {
	return fmt.Errorf("%w: %d values for %d index labels", ErrLengthMismatch, values, labels)
}
