// Package output provides formatters for rendering frames to various output
// formats.
//
// Currently supported formats:
//   - JSON Lines: one JSON object per row
//   - CSV: comma-separated values with header row
//   - Table: aligned text table
//
// Example usage:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//	if err := formatter.Format(f); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"

	"github.com/vegasq/frameq/frame"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a frame in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the frame in the formatter's specific format
	Format(f *frame.Frame) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// fields returns the output field names of a frame: named index levels
// first, then the columns, both in their frame order.
func fields(f *frame.Frame) []string {
	var names []string
	for _, name := range f.Index().Names() {
		if name != "" {
			names = append(names, name)
		}
	}
	return append(names, f.Columns()...)
}
