package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a parsed A1 notation range. Rows are 1-based, columns 0-based.
// EndRow 0 means open-ended, EndCol -1 means open-ended.
type Range struct {
	Sheet    string
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

func ParseRange(a1 string) (Range, error) {
	sheet, cells, found := strings.Cut(a1, "!")
	if !found {
		// whole sheet
		cells = ""
	}
	sheet = strings.Trim(sheet, "'")
	if sheet == "" {
		return Range{}, fmt.Errorf("%w: missing sheet name in %q", ErrInvalidRange, a1)
	}

	r := Range{Sheet: sheet, StartRow: 1, EndCol: -1}
	if cells == "" {
		return r, nil
	}

	start, end, isSpan := strings.Cut(cells, ":")
	startCol, startRow, err := parseCell(start)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %s", ErrInvalidRange, a1, err)
	}
	if startCol < 0 {
		startCol = 0
	}
	if startRow == 0 {
		startRow = 1
	}
	r.StartCol = startCol
	r.StartRow = startRow

	if !isSpan {
		// single cell
		r.EndCol = startCol
		r.EndRow = startRow
		return r, nil
	}

	endCol, endRow, err := parseCell(end)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %s", ErrInvalidRange, a1, err)
	}
	r.EndCol = endCol
	r.EndRow = endRow

	if (r.EndRow > 0 && r.EndRow < r.StartRow) || (r.EndCol >= 0 && r.EndCol < r.StartCol) {
		return Range{}, fmt.Errorf("%w: %q ends before it starts", ErrInvalidRange, a1)
	}
	return r, nil
}

// parseCell splits "AB12" into column 27 and row 12.
// A missing column is -1, a missing row is 0.
func parseCell(cell string) (int, int, error) {
	cell = strings.ToUpper(strings.TrimSpace(cell))
	if cell == "" {
		return 0, 0, fmt.Errorf("empty cell reference")
	}

	i := 0
	col := 0
	for i < len(cell) && cell[i] >= 'A' && cell[i] <= 'Z' {
		col = col*26 + int(cell[i]-'A'+1)
		i++
	}
	col--

	row := 0
	if i < len(cell) {
		var err error
		row, err = strconv.Atoi(cell[i:])
		if err != nil || row <= 0 {
			return 0, 0, fmt.Errorf("bad row in cell %q", cell)
		}
	}
	if col < 0 && row == 0 {
		return 0, 0, fmt.Errorf("bad cell %q", cell)
	}
	return col, row, nil
}

// ColumnName turns a 0-based column index into its letters: 0 -> A, 27 -> AB.
func ColumnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}

func CellRef(sheet string, col, row int) string {
	return fmt.Sprintf("%s!%s%d", sheet, ColumnName(col), row)
}

func (r Range) String() string {
	start := ColumnName(r.StartCol) + strconv.Itoa(r.StartRow)
	if r.EndCol == r.StartCol && r.EndRow == r.StartRow {
		return r.Sheet + "!" + start
	}
	end := ""
	if r.EndCol >= 0 {
		end = ColumnName(r.EndCol)
	}
	if r.EndRow > 0 {
		end += strconv.Itoa(r.EndRow)
	}
	if end == "" {
		end = ColumnName(r.StartCol)
	}
	return r.Sheet + "!" + start + ":" + end
}
