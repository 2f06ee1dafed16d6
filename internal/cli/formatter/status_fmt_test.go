package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/metrics"
	"github.com/alexanderramin/overwatch/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatDashboard_ShowsKPIsAndSections(t *testing.T) {
	d := &service.Dashboard{
		Now:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Protocol: domain.ProtocolMWS,
		Daily:    metrics.Daily{RotMin: 10, EFS: 81, Velocity: 2.0, ActiveHours: 2.0},
		Profile:  domain.DefaultProfile(),
		TodayEntries: []domain.LogEntry{
			{Time: "09:15", Kind: domain.KindMetric, Subject: "Physics", Activity: "Deep Study", DurationMin: 120, FocusPct: 80},
		},
		MatchedSlots: []domain.TimetableSlot{
			{DayType: "MWS", Span: domain.SlotSpan{FreeText: "06:00 - 08:00"}, Task: "Physics"},
		},
	}

	out := FormatDashboard(d)

	assert.Contains(t, out, "MWS Protocol")
	assert.Contains(t, out, "81")
	assert.Contains(t, out, "10m")
	assert.Contains(t, out, "2.00")
	assert.Contains(t, out, "06:00 - 08:00")
	assert.Contains(t, out, "Deep Study")
	assert.NotContains(t, out, "WARNING")
}

func TestFormatDashboard_RotWarning(t *testing.T) {
	d := &service.Dashboard{
		Now:         time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Protocol:    domain.ProtocolMWS,
		Daily:       metrics.Daily{RotMin: 90},
		Profile:     domain.DefaultProfile(),
		RotExceeded: true,
	}

	out := FormatDashboard(d)
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "90m")
	assert.Contains(t, out, "nothing logged")
	assert.Contains(t, out, "no slots scheduled")
}

func TestFormatEntries_AnomalyShowsNotes(t *testing.T) {
	out := FormatEntries([]domain.LogEntry{
		{Time: "21:00", Kind: domain.KindAnomaly, Notes: "power cut"},
	})
	assert.Contains(t, out, "anomaly")
	assert.Contains(t, out, "power cut")
}

func TestFormatWeekly_ScalesBars(t *testing.T) {
	week := []metrics.Daily{{EFS: 100}, {EFS: 50}, {EFS: -20}}
	out := FormatWeekly(week, []string{"Mon", "Tue", "Wed"})
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "-20")
	assert.Contains(t, out, "Mon")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"xx", "y"}})
	assert.Contains(t, out, "LONGER")
	assert.Contains(t, out, "xx")
	assert.Contains(t, out, "─")
}
