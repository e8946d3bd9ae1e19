package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

const DefaultMaxRows = 9999

type Column struct {
	Name     string
	Required bool
}

// Schema describes the header of one sheet.
type Schema struct {
	Sheet   string
	Columns []Column
	// rows where this column is empty are skipped (blank spreadsheet rows)
	SkipIfEmpty string
	MaxRows     int
}

func (s Schema) ReadRange() string {
	maxRows := s.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	// read a few columns past the schema, migrated sheets may have extras
	lastCol := len(s.Columns) + 4
	return fmt.Sprintf("%s!A1:%s%d", s.Sheet, ColumnName(lastCol), maxRows)
}

func (s Schema) AppendRange() string {
	return s.Sheet + "!A1"
}

func (s Schema) Header() []string {
	header := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		header = append(header, c.Name)
	}
	return header
}

// Values lays out the named values in schema column order.
func (s Schema) Values(values map[string]string) []string {
	row := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		row[i] = values[c.Name]
	}
	return row
}

type MissingColumnError struct {
	Sheet  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("sheet %s: missing required column %q", e.Sheet, e.Column)
}

type CellError struct {
	Sheet  string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("sheet %s row %d column %s: invalid value %q: %s", e.Sheet, e.Row, e.Column, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

type Table struct {
	Schema Schema
	Header []string
	Rows   []Row
	index  map[string]int
}

// ColumnIndex returns the 0-based position of the column in the actual sheet header.
func (t *Table) ColumnIndex(column string) (int, bool) {
	idx, ok := t.index[normalizeColumn(column)]
	return idx, ok
}

type Row struct {
	// 1-based row number in the sheet, header is row 1
	Number int
	sheet  string
	cells  []string
	index  map[string]int
}

// ParseTable maps raw rows (header first) onto the schema.
// All missing required columns are reported together.
func ParseTable(schema Schema, raw [][]string) (*Table, error) {
	if len(raw) == 0 {
		var err error
		for _, c := range schema.Columns {
			if c.Required {
				err = multierr.Append(err, &MissingColumnError{Sheet: schema.Sheet, Column: c.Name})
			}
		}
		if err != nil {
			return nil, err
		}
		return &Table{Schema: schema, index: map[string]int{}}, nil
	}

	header := raw[0]
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeColumn(h)
		if name == "" {
			continue
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var err error
	for _, c := range schema.Columns {
		if _, ok := index[normalizeColumn(c.Name)]; !ok && c.Required {
			err = multierr.Append(err, &MissingColumnError{Sheet: schema.Sheet, Column: c.Name})
		}
	}
	if err != nil {
		return nil, err
	}

	t := &Table{
		Schema: schema,
		Header: header,
		index:  index,
	}
	for i, cells := range raw[1:] {
		if isEmptyRow(cells) {
			continue
		}
		row := Row{
			Number: i + 2,
			sheet:  schema.Sheet,
			cells:  cells,
			index:  index,
		}
		if schema.SkipIfEmpty != "" && row.String(schema.SkipIfEmpty) == "" {
			continue
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// String returns the trimmed cell value, empty when the column or cell is missing.
func (r Row) String(column string) string {
	idx, ok := r.index[normalizeColumn(column)]
	if !ok || idx >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[idx])
}

// Bool is true only for TRUE, case-insensitive.
func (r Row) Bool(column string) bool {
	return strings.EqualFold(r.String(column), "TRUE")
}

// Int parses an optional integer cell. ok is false for an empty cell.
func (r Row) Int(column string) (value int, ok bool, err error) {
	raw := r.String(column)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, r.cellErr(column, raw, err)
	}
	return v, true, nil
}

// Float parses an optional decimal cell, a comma decimal separator is accepted.
func (r Row) Float(column string) (value float64, ok bool, err error) {
	raw := r.String(column)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return 0, false, r.cellErr(column, raw, err)
	}
	return v, true, nil
}

func (r Row) cellErr(column, value string, err error) error {
	return &CellError{
		Sheet:  r.sheet,
		Row:    r.Number,
		Column: column,
		Value:  value,
		Err:    err,
	}
}

func normalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
