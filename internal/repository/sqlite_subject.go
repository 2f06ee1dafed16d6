package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/overwatch/internal/db"
)

// SQLiteSubjectRepo implements SubjectRepo using a SQLite database.
type SQLiteSubjectRepo struct {
	db db.DBTX
}

// NewSQLiteSubjectRepo creates a new SQLiteSubjectRepo.
func NewSQLiteSubjectRepo(db db.DBTX) *SQLiteSubjectRepo {
	return &SQLiteSubjectRepo{db: db}
}

func (r *SQLiteSubjectRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM subjects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning subject: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	return names, nil
}

func (r *SQLiteSubjectRepo) Add(ctx context.Context, name string) error {
	// Re-adding an existing name is a no-op: the set is a union.
	query := `INSERT INTO subjects (name) VALUES (?) ON CONFLICT(name) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("adding subject: %w", err)
	}
	return nil
}
