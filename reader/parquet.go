// Package reader reads Apache Parquet files into frames.
//
// It uses the parquet-go library to read parquet files and returns the rows
// as a frame.Frame, with columns in schema order.
package reader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/frameq/frame"
	"github.com/vegasq/frameq/pool"
)

// FileColumn is the column added to multi-file reads to track the source
// file of every row.
const FileColumn = "_file"

// Reader reads a parquet file into a Frame.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewReader creates a new parquet reader for the specified file path.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
//
// Example:
//
//	reader, err := NewReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadFrame reads all rows of the parquet file into a Frame with columns in
// schema order and the default positional index. The entire file is loaded
// into memory, so this method may not be suitable for very large files.
func (r *Reader) ReadFrame() (*frame.Frame, error) {
	schema := r.pqFile.Schema()
	fields := schema.Fields()
	names := make([]string, len(fields))
	for i := range names {
		names[i] = fields[i].Name()
	}

	cols := make([]frame.Column, len(names))
	for i, name := range names {
		cols[i] = frame.Column{Name: name, Values: []any{}}
	}

	rows := parquet.NewReader(r.pqFile)
	defer func() { _ = rows.Close() }()

	for {
		row := make(map[string]any)
		err := rows.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		for i, name := range names {
			cols[i].Values = append(cols[i].Values, row[name])
		}
	}

	return frame.New(cols)
}

// Schema returns the parquet file schema.
//
// The schema contains metadata about the columns, types, and structure
// of the parquet file.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close closes the parquet reader and releases associated resources.
//
// Should be called when done reading to avoid resource leaks. It is safe
// to call Close multiple times.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// readOne reads a single file into a frame, releasing the file handle before
// returning.
func readOne(path string) (*frame.Frame, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return r.ReadFrame()
}

// ReadFrames reads all rows from the parquet files matching a glob pattern
// into a single Frame.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// When the pattern matches more than one file, the files are read
// concurrently (bounded by pool.Jobs), every row is tagged with a FileColumn
// holding the source file path, and the frames are concatenated. A plain
// path without wildcards reads a single file and adds no FileColumn.
//
// The indexCols, if any, are promoted to index levels of the result.
func ReadFrames(ctx context.Context, pattern string, indexCols []string) (*frame.Frame, error) {
	if !strings.ContainsAny(pattern, "*?[]") {
		f, err := readOne(pattern)
		if err != nil {
			return nil, err
		}
		return withIndex(f, indexCols)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}

	// Limit number of files to prevent resource exhaustion
	const maxFiles = 1000
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	frames, err := pool.Map(ctx, matches, func(_ context.Context, _ int, path string) (*frame.Frame, error) {
		f, err := readOne(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		tags := make([]any, f.Len())
		for i := range tags {
			tags[i] = path
		}
		return f.WithColumn(FileColumn, tags)
	})
	if err != nil {
		return nil, err
	}

	combined, err := frame.Concat(frames, nil)
	if err != nil {
		return nil, err
	}
	return withIndex(combined, indexCols)
}

func withIndex(f *frame.Frame, indexCols []string) (*frame.Frame, error) {
	if len(indexCols) == 0 {
		return f, nil
	}
	return f.SetIndex(indexCols...)
}
