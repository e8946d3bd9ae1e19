package spreadsheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcycle/internal/telemetry/tracing"
)

// PostgresStore keeps every sheet row as a text array, so the same
// range semantics work against a database instead of Google Sheets.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

const createTablesSQL = `
	CREATE TABLE IF NOT EXISTS sheet (
		name TEXT PRIMARY KEY
	);
	CREATE TABLE IF NOT EXISTS sheet_row (
		sheet   TEXT    NOT NULL REFERENCES sheet (name) ON DELETE CASCADE,
		row_num INTEGER NOT NULL,
		cells   TEXT[]  NOT NULL DEFAULT '{}',
		PRIMARY KEY (sheet, row_num)
	);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createTablesSQL); err != nil {
		return fmt.Errorf("create sheet tables: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, rng string) (_ [][]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postgres-store.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("range", rng))

	r, err := ParseRange(rng)
	if err != nil {
		return nil, err
	}
	if err := s.checkSheet(ctx, s.db, r.Sheet); err != nil {
		return nil, err
	}

	endRow := r.EndRow
	if endRow == 0 {
		endRow = -1
	}
	rows, err := s.db.Query(ctx, `
		SELECT row_num, cells
		FROM sheet_row
		WHERE sheet = $1
		  AND row_num >= $2
		  AND ($3 < 0 OR row_num <= $3)
		ORDER BY row_num
	`, r.Sheet, r.StartRow, endRow)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// rebuild the sheet from row 1 so cellsRect can cut the requested window
	var sheetRows [][]string
	for rows.Next() {
		var rowNum int
		var cells []string
		if err := rows.Scan(&rowNum, &cells); err != nil {
			return nil, err
		}
		for len(sheetRows) < rowNum-1 {
			sheetRows = append(sheetRows, []string{})
		}
		sheetRows = append(sheetRows, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cellsRect(sheetRows, r), nil
}

func (s *PostgresStore) Append(ctx context.Context, rng string, row []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postgres-store.append")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("range", rng))

	r, err := ParseRange(rng)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = s.checkSheet(ctx, tx, r.Sheet); err != nil {
		return err
	}

	// serialize appends to the same sheet
	if _, err = tx.Exec(ctx, `SELECT name FROM sheet WHERE name = $1 FOR UPDATE`, r.Sheet); err != nil {
		return err
	}

	cells := make([]string, r.StartCol, r.StartCol+len(row))
	cells = append(cells, row...)
	_, err = tx.Exec(ctx, `
		INSERT INTO sheet_row (sheet, row_num, cells)
		SELECT $1, COALESCE(MAX(row_num), 0) + 1, $2
		FROM sheet_row
		WHERE sheet = $1 AND cardinality(array_remove(cells, '')) > 0
		ON CONFLICT (sheet, row_num) DO UPDATE SET cells = EXCLUDED.cells
	`, r.Sheet, cells)
	return err
}

func (s *PostgresStore) Update(ctx context.Context, rng string, values [][]string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postgres-store.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("range", rng))

	r, err := ParseRange(rng)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = s.checkSheet(ctx, tx, r.Sheet); err != nil {
		return err
	}

	for i, vals := range values {
		rowNum := r.StartRow + i
		var existing []string
		err = tx.QueryRow(ctx, `
			SELECT cells FROM sheet_row WHERE sheet = $1 AND row_num = $2 FOR UPDATE
		`, r.Sheet, rowNum).Scan(&existing)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		err = nil

		for len(existing) < r.StartCol+len(vals) {
			existing = append(existing, "")
		}
		copy(existing[r.StartCol:], vals)

		_, err = tx.Exec(ctx, `
			INSERT INTO sheet_row (sheet, row_num, cells)
			VALUES ($1, $2, $3)
			ON CONFLICT (sheet, row_num) DO UPDATE SET cells = EXCLUDED.cells
		`, r.Sheet, rowNum, existing)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) EnsureSheet(ctx context.Context, sheet string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		INSERT INTO sheet (name) VALUES ($1) ON CONFLICT (name) DO NOTHING
	`, sheet)
	if err != nil {
		return false, fmt.Errorf("ensure sheet %s: %w", sheet, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *PostgresStore) Clear(ctx context.Context, rng string) error {
	r, err := ParseRange(rng)
	if err != nil {
		return err
	}
	if r.StartCol != 0 || r.EndCol >= 0 {
		// partial rows, fall back to blanking cells
		rows, err := s.Get(ctx, Range{Sheet: r.Sheet, StartCol: 0, StartRow: r.StartRow, EndCol: -1, EndRow: r.EndRow}.String())
		if err != nil {
			return err
		}
		var blank [][]string
		for range rows {
			width := r.EndCol - r.StartCol + 1
			if r.EndCol < 0 {
				width = 26
			}
			blank = append(blank, make([]string, width))
		}
		if len(blank) == 0 {
			return nil
		}
		return s.Update(ctx, Range{Sheet: r.Sheet, StartCol: r.StartCol, StartRow: r.StartRow, EndCol: r.StartCol, EndRow: r.StartRow}.String(), blank)
	}

	endRow := r.EndRow
	if endRow == 0 {
		endRow = -1
	}
	_, err = s.db.Exec(ctx, `
		DELETE FROM sheet_row
		WHERE sheet = $1 AND row_num >= $2 AND ($3 < 0 OR row_num <= $3)
	`, r.Sheet, r.StartRow, endRow)
	return err
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (s *PostgresStore) checkSheet(ctx context.Context, q querier, sheet string) error {
	var name string
	err := q.QueryRow(ctx, `SELECT name FROM sheet WHERE name = $1`, sheet).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	return err
}
