package repository

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDatasetUnavailable is returned when a dataset file or table cannot be read.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
	// ErrMissingColumn is returned when a dataset lacks a column the dashboard needs.
	ErrMissingColumn = errors.New("missing column")
	// ErrUnknownDataset is returned for dataset names that are not configured.
	ErrUnknownDataset = errors.New("unknown dataset")
)

// Frame is a dataset held in memory as a header and string rows.
type Frame struct {
	Name    string
	Columns []string
	Rows    [][]string
	Skipped int // malformed rows dropped while reading

	index map[string]int
}

// NewFrame builds a frame; column names are matched case-insensitively and a UTF-8 BOM on the
// first header cell is ignored.
func NewFrame(name string, columns []string, rows [][]string) *Frame {
	f := &Frame{
		Name:    name,
		Columns: make([]string, len(columns)),
		Rows:    rows,
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		c = strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
		f.Columns[i] = c
		key := strings.ToLower(c)
		if _, dup := f.index[key]; !dup {
			f.index[key] = i
		}
	}
	return f
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Rows)
}

// Index returns the position of the first matching alias, or -1.
func (f *Frame) Index(aliases ...string) int {
	for _, a := range aliases {
		if i, ok := f.index[strings.ToLower(a)]; ok {
			return i
		}
	}
	return -1
}

// Require is Index for mandatory columns.
func (f *Frame) Require(aliases ...string) (int, error) {
	i := f.Index(aliases...)
	if i < 0 {
		return -1, fmt.Errorf("%w %q in dataset %s", ErrMissingColumn, aliases[0], f.Name)
	}
	return i, nil
}

// Value returns the trimmed cell at column i of row, or "" when the column is absent.
func Value(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
