package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vegasq/frameq/output"
	"github.com/vegasq/frameq/query"
	"github.com/vegasq/frameq/reader"
)

var (
	queryFlag  = flag.String("q", "", "JSON query: a filter object or a list of filter objects (e.g. '{\"simulation_id\": 1, \"window\": {\"isin\": [\"w0\", \"w1\"]}}')")
	formatFlag = flag.String("f", "jsonl", "Output format: jsonl, csv, table")
	indexFlag  = flag.String("index", "", "Comma-separated columns to promote to index levels")
	limitFlag  = flag.Int("limit", 0, "Limit number of rows (0 = unlimited)")
	schemaFlag = flag.Bool("schema", false, "Show schema information instead of data")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.parquet>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to read and filter Parquet files with declarative queries.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE the file argument.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s data.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f csv data.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q '{\"age\": {\"gt\": 30}}' data.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q '[{\"window\": \"w0\"}, {\"window\": \"w1\", \"trial\": 0}]' 'data/*.parquet'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -index simulation_id,circuit_id -f table data.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --schema data.parquet\n", os.Args[0])
	}

	flag.Parse()

	if *limitFlag < 0 {
		fmt.Fprintf(os.Stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		os.Exit(1)
	}
	if *schemaFlag && *queryFlag != "" {
		fmt.Fprintf(os.Stderr, "Error: --schema and -q cannot be used together\n")
		os.Exit(1)
	}
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing parquet file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	if *schemaFlag {
		handleSchemaMode(filename)
		os.Exit(0)
	}

	var queryList []query.Filter
	if *queryFlag != "" {
		var err error
		queryList, err = query.ParseQuery([]byte(*queryFlag))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing query: %v\n\n", err)
			fmt.Fprintf(os.Stderr, "Query format: {\"field\": value, \"field\": {\"op\": value}}\n")
			fmt.Fprintf(os.Stderr, "Operators: eq, ne, le, lt, ge, gt, isin, regex\n")
			os.Exit(1)
		}
	}

	var indexCols []string
	if *indexFlag != "" {
		indexCols = strings.Split(*indexFlag, ",")
	}

	f, err := reader.ReadFrames(context.Background(), filename, indexCols)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", filename)
			fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if len(queryList) > 0 {
		f, err = query.FilterFrame(f, queryList)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error filtering: %v\n", err)
			os.Exit(1)
		}
	}

	if *limitFlag > 0 {
		f = f.Head(*limitFlag)
	}

	formatter, err := newFormatter(*formatFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := formatter.Format(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

func newFormatter(format string) (output.Formatter, error) {
	switch format {
	case "jsonl", "json":
		return output.NewJSONFormatter(os.Stdout), nil
	case "csv":
		return output.NewCSVFormatter(os.Stdout), nil
	case "table":
		return output.NewTableFormatter(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want jsonl, csv or table)", format)
	}
}

func handleSchemaMode(filename string) {
	r, err := reader.NewReader(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = r.Close() }()

	schema := r.Schema()
	for _, field := range schema.Fields() {
		fmt.Printf("%s: %s\n", field.Name(), field.Type())
	}
}
