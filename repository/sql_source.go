package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// SQLSource reads whole tables through database/sql.
type SQLSource struct {
	DB *sql.DB
}

func NewSQLSource(conn *sql.DB) *SQLSource {
	return &SQLSource{DB: conn}
}

// Load reads every row of table into a frame. NULLs become empty cells.
func (s *SQLSource) Load(ctx context.Context, name, table string) (*Frame, error) {
	if s == nil || s.DB == nil {
		return nil, fmt.Errorf("%w: %s: no database configured", ErrDatasetUnavailable, name)
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("%w: %s: invalid table name %q", ErrDatasetUnavailable, name, table)
	}

	rows, err := s.DB.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDatasetUnavailable, name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDatasetUnavailable, name, err)
	}

	var out [][]string
	cells := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range cells {
		dest[i] = &cells[i]
	}
	skipped := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			skipped++
			continue
		}
		row := make([]string, len(columns))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDatasetUnavailable, name, err)
	}

	frame := NewFrame(name, columns, out)
	frame.Skipped = skipped
	return frame, nil
}
