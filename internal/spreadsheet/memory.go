package spreadsheet

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps sheets in memory. Used in tests and for local development.
type MemoryStore struct {
	mutex  sync.RWMutex
	sheets map[string][][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sheets: make(map[string][][]string),
	}
}

// Seed replaces the sheet content with the given rows, header first.
func (s *MemoryStore) Seed(sheet string, rows [][]string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	copied := make([][]string, 0, len(rows))
	for _, r := range rows {
		copied = append(copied, append([]string(nil), r...))
	}
	s.sheets[sheet] = copied
}

func (s *MemoryStore) Get(_ context.Context, rng string) ([][]string, error) {
	r, err := ParseRange(rng)
	if err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	rows, ok := s.sheets[r.Sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, r.Sheet)
	}
	return cellsRect(rows, r), nil
}

func (s *MemoryStore) Append(_ context.Context, rng string, row []string) error {
	r, err := ParseRange(rng)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	rows, ok := s.sheets[r.Sheet]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, r.Sheet)
	}

	// place right after the last non-empty row
	last := len(rows)
	for last > 0 && isEmptyRow(rows[last-1]) {
		last--
	}
	newRow := make([]string, r.StartCol, r.StartCol+len(row))
	newRow = append(newRow, row...)
	s.sheets[r.Sheet] = append(rows[:last], newRow)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, rng string, values [][]string) error {
	r, err := ParseRange(rng)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	rows, ok := s.sheets[r.Sheet]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, r.Sheet)
	}

	for i, vals := range values {
		rowIdx := r.StartRow - 1 + i
		for len(rows) <= rowIdx {
			rows = append(rows, []string{})
		}
		row := rows[rowIdx]
		for len(row) < r.StartCol+len(vals) {
			row = append(row, "")
		}
		copy(row[r.StartCol:], vals)
		rows[rowIdx] = row
	}
	s.sheets[r.Sheet] = rows
	return nil
}

func (s *MemoryStore) EnsureSheet(_ context.Context, sheet string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.sheets[sheet]; ok {
		return false, nil
	}
	s.sheets[sheet] = [][]string{}
	return true, nil
}

func (s *MemoryStore) Clear(_ context.Context, rng string) error {
	r, err := ParseRange(rng)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	rows, ok := s.sheets[r.Sheet]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, r.Sheet)
	}
	endRow := len(rows)
	if r.EndRow > 0 && r.EndRow < endRow {
		endRow = r.EndRow
	}
	for i := r.StartRow - 1; i < endRow; i++ {
		row := rows[i]
		end := len(row)
		if r.EndCol >= 0 && r.EndCol+1 < end {
			end = r.EndCol + 1
		}
		for c := r.StartCol; c < end; c++ {
			row[c] = ""
		}
	}
	return nil
}
