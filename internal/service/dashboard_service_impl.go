package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/overwatch/internal/metrics"
	"github.com/alexanderramin/overwatch/internal/normalize"
	"github.com/alexanderramin/overwatch/internal/protocol"
	"github.com/alexanderramin/overwatch/internal/repository"
)

type dashboardService struct {
	logs     repository.LogRepo
	slots    repository.TimetableRepo
	profiles repository.ProfileRepo
	loc      *time.Location
}

func NewDashboardService(
	logs repository.LogRepo,
	slots repository.TimetableRepo,
	profiles repository.ProfileRepo,
	loc *time.Location,
) DashboardService {
	return &dashboardService{logs: logs, slots: slots, profiles: profiles, loc: loc}
}

func (s *dashboardService) Snapshot(ctx context.Context, now time.Time) (*Dashboard, error) {
	// Logging throughput is the priority path: a failure here is fatal, but
	// everything after the log read degrades to empty rather than erroring.
	logRows, err := s.logs.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading log entries: %w", err)
	}
	entries := normalize.Entries(logRows)

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	// The stored timezone steers the whole pass: protocol selection and day
	// boundaries both move with it.
	loc := protocol.ResolveZone(profile.Timezone, s.loc)
	label := protocol.Select(now, loc)
	today := metrics.EntriesForDay(entries, now, loc)

	d := &Dashboard{
		Now:          now.In(loc),
		Protocol:     label,
		Daily:        metrics.ComputeDaily(entries, now, loc),
		Entries:      entries,
		TodayEntries: today,
		Distribution: metrics.SubjectDistribution(today),
		Weekly:       metrics.ComputeWeekly(entries, now, loc),
		Profile:      profile,
	}

	if slotRows, err := s.slots.ListRows(ctx); err == nil {
		d.AllSlots = normalize.Slots(slotRows)
		d.MatchedSlots = protocol.MatchSlots(d.AllSlots, label)
	}

	d.RotExceeded = d.Daily.RotMin > profile.RotLimitMin
	d.AutoAdvise = d.RotExceeded && profile.AutoAdvise

	return d, nil
}
