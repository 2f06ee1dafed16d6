package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/overwatch/internal/db"
	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/normalize"
)

// SQLiteTimetableRepo implements TimetableRepo using a SQLite database.
type SQLiteTimetableRepo struct {
	db db.DBTX
}

// NewSQLiteTimetableRepo creates a new SQLiteTimetableRepo.
func NewSQLiteTimetableRepo(db db.DBTX) *SQLiteTimetableRepo {
	return &SQLiteTimetableRepo{db: db}
}

func (r *SQLiteTimetableRepo) ListRows(ctx context.Context) ([]domain.RawRow, error) {
	query := `SELECT day_type, time_slot, start_time, end_time, task FROM timetable_slots ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing timetable rows: %w", err)
	}
	defer rows.Close()

	var result []domain.RawRow
	for rows.Next() {
		var dayType, timeSlot, start, end, task string
		if err := rows.Scan(&dayType, &timeSlot, &start, &end, &task); err != nil {
			return nil, fmt.Errorf("scanning timetable row: %w", err)
		}
		row := domain.RawRow{
			domain.ColDayType: dayType,
			domain.ColTask:    task,
		}
		// Preserve whichever slot shape the row was stored with.
		if start != "" || end != "" {
			row[domain.ColStart] = start
			row[domain.ColEnd] = end
		} else {
			row[domain.ColTimeSlot] = timeSlot
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timetable rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteTimetableRepo) Append(ctx context.Context, row domain.RawRow) error {
	slots := normalize.Slots([]domain.RawRow{row})
	slot := slots[0]

	query := `INSERT INTO timetable_slots (day_type, time_slot, start_time, end_time, task)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		slot.DayType, slot.Span.FreeText, slot.Span.Start, slot.Span.End, slot.Task,
	)
	if err != nil {
		return fmt.Errorf("appending timetable row: %w", err)
	}
	return nil
}

func (r *SQLiteTimetableRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timetable_slots`); err != nil {
		return fmt.Errorf("clearing timetable: %w", err)
	}
	return nil
}
