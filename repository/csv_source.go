package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"cop_dashboard/logger"
)

// LoadCSV reads a delimited file with a header row.
func LoadCSV(name, path string, comma rune) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDatasetUnavailable, name, err)
	}
	defer file.Close()

	return ReadCSV(name, file, comma)
}

// ReadCSV parses delimited text. Rows the parser rejects or that carry more fields than the
// header are skipped; short rows are padded with empty cells.
func ReadCSV(name string, r io.Reader, comma rune) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: empty file", ErrDatasetUnavailable, name)
		}
		return nil, fmt.Errorf("%w: %s: read header: %v", ErrDatasetUnavailable, name, err)
	}

	var rows [][]string
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				logger.Debug("skipping malformed row", "dataset", name, "line", parseErr.Line, "error", parseErr.Err)
				skipped++
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrDatasetUnavailable, name, err)
		}
		if len(row) > len(header) {
			logger.Debug("skipping row with extra fields", "dataset", name, "fields", len(row), "expected", len(header))
			skipped++
			continue
		}
		for len(row) < len(header) {
			row = append(row, "")
		}
		rows = append(rows, row)
	}

	frame := NewFrame(name, header, rows)
	frame.Skipped = skipped
	return frame, nil
}
