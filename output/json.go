package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/frameq/frame"
)

// JSONFormatter outputs frames as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the frame as JSON Lines (one JSON object per row). Named
// index levels are included alongside the columns.
func (j *JSONFormatter) Format(f *frame.Frame) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range f.Rows() {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
