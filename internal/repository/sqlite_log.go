package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/overwatch/internal/db"
	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/normalize"
)

// SQLiteLogRepo implements LogRepo using a SQLite database.
type SQLiteLogRepo struct {
	db db.DBTX
}

// NewSQLiteLogRepo creates a new SQLiteLogRepo.
func NewSQLiteLogRepo(db db.DBTX) *SQLiteLogRepo {
	return &SQLiteLogRepo{db: db}
}

func (r *SQLiteLogRepo) ListRows(ctx context.Context) ([]domain.RawRow, error) {
	query := `SELECT id, date, time, type, sector, subject, activity, duration, output, rot, focus, notes
		FROM logs ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing log rows: %w", err)
	}
	defer rows.Close()

	var result []domain.RawRow
	for rows.Next() {
		var (
			id, date, timeStr, kind, sector, subject, activity, notes string
			duration, output, rot, focus                              int
		)
		if err := rows.Scan(&id, &date, &timeStr, &kind, &sector, &subject, &activity,
			&duration, &output, &rot, &focus, &notes); err != nil {
			return nil, fmt.Errorf("scanning log row: %w", err)
		}
		result = append(result, domain.RawRow{
			"ID":               id,
			domain.ColDate:     date,
			domain.ColTime:     timeStr,
			domain.ColType:     kind,
			domain.ColSector:   sector,
			domain.ColSubject:  subject,
			domain.ColActivity: activity,
			domain.ColDuration: duration,
			domain.ColOutput:   output,
			domain.ColRot:      rot,
			domain.ColFocus:    focus,
			domain.ColNotes:    notes,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating log rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteLogRepo) Append(ctx context.Context, row domain.RawRow) error {
	// Rows may arrive with heterogeneous cell types (snapshot imports carry
	// JSON numbers); normalize once so the stored shape is uniform.
	e := normalize.Entry(row)
	date := ""
	if e.HasValidDate() {
		date = e.Date.Format("2006-01-02")
	}

	query := `INSERT INTO logs (id, date, time, type, sector, subject, activity, duration, output, rot, focus, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, date, e.Time, string(e.Kind), e.Sector, e.Subject, e.Activity,
		e.DurationMin, e.Output, e.RotMin, e.FocusPct, e.Notes,
	)
	if err != nil {
		return fmt.Errorf("appending log row: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM logs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting log rows: %w", err)
	}
	return n, nil
}
