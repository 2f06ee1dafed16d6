package repository

import (
	"context"

	"github.com/alexanderramin/overwatch/internal/domain"
)

// LogRepo is the store adapter for the append-only study log. Rows cross this
// boundary in the store's open column layout; the normalize package owns the
// conversion into typed entries.
type LogRepo interface {
	// ListRows returns every logged row in insertion order.
	ListRows(ctx context.Context) ([]domain.RawRow, error)
	// Append stores one row. There is no update or delete: corrections are
	// an out-of-band operation against the store.
	Append(ctx context.Context, row domain.RawRow) error
	// Count reports the number of stored rows.
	Count(ctx context.Context) (int, error)
}

// TimetableRepo is the store adapter for scheduled commitments.
type TimetableRepo interface {
	ListRows(ctx context.Context) ([]domain.RawRow, error)
	Append(ctx context.Context, row domain.RawRow) error
	// Clear removes every slot. The only deletion the timetable supports.
	Clear(ctx context.Context) error
}

// SubjectRepo stores user-added subject names. Defaults are unioned in by the
// service layer, not persisted.
type SubjectRepo interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
}

// ProfileRepo stores the single user profile.
type ProfileRepo interface {
	// Get returns the stored profile, or defaults when none exists yet.
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}
