package spreadsheet

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrSheetNotFound = errors.New("sheet not found")
	ErrInvalidRange  = errors.New("invalid range")
)

// Store is the row-based view of the backing spreadsheet.
// Ranges use A1 notation, e.g. "Workout_Log!A1:E9999".
type Store interface {
	// Get returns the rows inside the range. Trailing empty rows and cells are dropped.
	Get(ctx context.Context, rng string) ([][]string, error)
	// Append adds the row after the last non-empty row of the range's sheet.
	Append(ctx context.Context, rng string, row []string) error
	// Update overwrites the cells starting at the top-left cell of the range.
	Update(ctx context.Context, rng string, values [][]string) error
}

// AdminStore adds the operations used by the setup and migration commands.
type AdminStore interface {
	Store
	// EnsureSheet creates the sheet when missing and reports whether it did.
	EnsureSheet(ctx context.Context, sheet string) (bool, error)
	Clear(ctx context.Context, rng string) error
}

// EnsureHeader makes sure the first row of the sheet holds all the given columns.
// Existing columns keep their place, missing ones are appended to the right.
// Returns the columns that were added.
func EnsureHeader(ctx context.Context, store Store, sheet string, columns []string) ([]string, error) {
	rows, err := store.Get(ctx, sheet+"!A1:ZZ1")
	if err != nil {
		return nil, fmt.Errorf("get %s header: %w", sheet, err)
	}

	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[normalizeColumn(h)] = true
	}

	var added []string
	for _, c := range columns {
		if !present[normalizeColumn(c)] {
			header = append(header, c)
			added = append(added, c)
		}
	}
	if len(added) == 0 {
		return nil, nil
	}

	if err := store.Update(ctx, sheet+"!A1", [][]string{header}); err != nil {
		return nil, fmt.Errorf("update %s header: %w", sheet, err)
	}
	return added, nil
}

func cellsRect(rows [][]string, r Range) [][]string {
	startRow := r.StartRow - 1
	endRow := len(rows)
	if r.EndRow > 0 && r.EndRow < endRow {
		endRow = r.EndRow
	}

	var out [][]string
	for i := startRow; i < endRow; i++ {
		row := rows[i]
		var cells []string
		if r.StartCol < len(row) {
			end := len(row)
			if r.EndCol >= 0 && r.EndCol+1 < end {
				end = r.EndCol + 1
			}
			cells = append(cells, row[r.StartCol:end]...)
		}
		out = append(out, trimTrailingEmpty(cells))
	}

	// drop trailing empty rows, the way the sheets api does
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out
}

func trimTrailingEmpty(cells []string) []string {
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	if cells == nil {
		return []string{}
	}
	return cells
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
