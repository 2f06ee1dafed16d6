package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/overwatch/internal/db"
	"github.com/alexanderramin/overwatch/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(db db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: db}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT id, efs_target, rot_limit_min, auto_advise, timezone FROM profile LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.Profile
	var autoAdvise int
	err := row.Scan(&p.ID, &p.EFSTarget, &p.RotLimitMin, &autoAdvise, &p.Timezone)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultProfile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	p.AutoAdvise = autoAdvise != 0
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	if p.ID == "" {
		p.ID = "default"
	}
	autoAdvise := 0
	if p.AutoAdvise {
		autoAdvise = 1
	}

	query := `INSERT INTO profile (id, efs_target, rot_limit_min, auto_advise, timezone)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			efs_target = excluded.efs_target,
			rot_limit_min = excluded.rot_limit_min,
			auto_advise = excluded.auto_advise,
			timezone = excluded.timezone`
	if _, err := r.db.ExecContext(ctx, query,
		p.ID, p.EFSTarget, p.RotLimitMin, autoAdvise, p.Timezone,
	); err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
