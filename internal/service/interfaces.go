package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/overwatch/internal/advisory"
	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/metrics"
)

type LogService interface {
	// Append records one entry, filling ID, time-of-day, and the sector
	// default (the active protocol) when absent. Returns the stored entry.
	Append(ctx context.Context, e domain.LogEntry) (domain.LogEntry, error)
	// List returns every entry, normalized, in insertion order.
	List(ctx context.Context) ([]domain.LogEntry, error)
}

type TimetableService interface {
	AddSlot(ctx context.Context, slot domain.TimetableSlot) error
	List(ctx context.Context) ([]domain.TimetableSlot, error)
	Clear(ctx context.Context) error
}

type SubjectService interface {
	// Set returns the defaults unioned with stored additions.
	Set(ctx context.Context) (*domain.SubjectSet, error)
	Add(ctx context.Context, name string) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
}

// Dashboard is one full recomputation pass over the current data: everything
// the status view, charts, and advisory context need, read fresh.
type Dashboard struct {
	Now          time.Time
	Protocol     domain.ProtocolLabel
	Daily        metrics.Daily
	Entries      []domain.LogEntry
	TodayEntries []domain.LogEntry
	MatchedSlots []domain.TimetableSlot
	AllSlots     []domain.TimetableSlot
	Distribution map[string]int
	Weekly       []metrics.Daily
	Profile      *domain.Profile

	// RotExceeded flags today's rot crossing the profile limit.
	// AutoAdvise additionally requests an intervention consult; it is set
	// only when the profile opted in.
	RotExceeded bool
	AutoAdvise  bool
}

// AdvisoryContext converts the dashboard into the bounded assistant snapshot.
func (d *Dashboard) AdvisoryContext() advisory.Context {
	return advisory.Context{
		Protocol: d.Protocol,
		Date:     d.Now.Format("2006-01-02"),
		Daily:    d.Daily,
		Entries:  d.Entries,
		Slots:    d.MatchedSlots,
	}
}

type DashboardService interface {
	// Snapshot re-reads the store and recomputes all KPIs for now's
	// calendar day. Missing timetable or subjects never fail the pass.
	Snapshot(ctx context.Context, now time.Time) (*Dashboard, error)
}

// ImportResult holds the outcome of a snapshot import.
type ImportResult struct {
	LogCount     int
	SubjectCount int
	SlotCount    int
}

type SnapshotService interface {
	// Export writes the full persisted state as a snapshot document.
	Export(ctx context.Context, w io.Writer) error
	// Import validates and loads a snapshot, replacing existing state.
	// A snapshot that fails validation leaves the store untouched.
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
}
