package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/frameq/frame"
)

// TableFormatter outputs frames as an aligned text table, mainly for
// interactive use.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the frame as an aligned table with the named index levels
// and columns as header.
func (t *TableFormatter) Format(f *frame.Frame) error {
	table := tablewriter.NewWriter(t.writer)
	header := fields(f)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)

	for _, row := range f.Rows() {
		record := make([]string, len(header))
		for i, name := range header {
			record[i] = formatValue(row[name])
		}
		table.Append(record)
	}

	table.Render()
	return nil
}
