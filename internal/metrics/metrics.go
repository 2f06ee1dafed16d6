// Package metrics turns normalized log entries into daily KPIs. Everything
// here is pure: the orchestration layer re-reads the store and recomputes on
// every interaction.
package metrics

import (
	"math"
	"time"

	"github.com/alexanderramin/overwatch/internal/domain"
)

// rotPenalty is the multiplier applied to wasted minutes in the EFS formula.
const rotPenalty = 1.5

// Daily holds one day's KPIs. An empty day is all zeros, not an error.
type Daily struct {
	RotMin      int
	EFS         int
	Velocity    float64
	ActiveHours float64
}

// ComputeDaily computes KPIs for the calendar day of refDate in loc.
//
// Only Metric entries dated that day participate; anomalies and entries with
// an invalid date never do. EFS sums duration*(focus/100) - rot*1.5 per entry
// and truncates toward zero at the end; negative scores are meaningful (a
// net-negative day) and are not clamped. Velocity is output per active hour,
// defined as 0 when no time was logged.
func ComputeDaily(entries []domain.LogEntry, refDate time.Time, loc *time.Location) Daily {
	var (
		rot      float64
		efs      float64
		totalMin float64
		output   float64
	)

	for _, e := range entries {
		if !e.IsMetric() || !matchesDay(e, refDate, loc) {
			continue
		}
		rot += float64(e.RotMin)
		efs += float64(e.DurationMin)*(float64(e.FocusPct)/100) - float64(e.RotMin)*rotPenalty
		totalMin += float64(e.DurationMin)
		output += float64(e.Output)
	}

	hours := totalMin / 60
	velocity := 0.0
	if hours > 0 {
		velocity = math.Round(output/hours*100) / 100
	}

	return Daily{
		RotMin:      int(rot),
		EFS:         int(efs),
		Velocity:    velocity,
		ActiveHours: hours,
	}
}

// EntriesForDay returns every entry dated the calendar day of refDate, in
// input order. Anomalies are included: they are excluded from KPI arithmetic
// but retained for display and context.
func EntriesForDay(entries []domain.LogEntry, refDate time.Time, loc *time.Location) []domain.LogEntry {
	var day []domain.LogEntry
	for _, e := range entries {
		if matchesDay(e, refDate, loc) {
			day = append(day, e)
		}
	}
	return day
}

// SubjectDistribution sums logged minutes per subject across Metric entries.
func SubjectDistribution(entries []domain.LogEntry) map[string]int {
	dist := make(map[string]int)
	for _, e := range entries {
		if !e.IsMetric() || e.DurationMin == 0 {
			continue
		}
		dist[e.Subject] += e.DurationMin
	}
	return dist
}

// ComputeWeekly computes one Daily per day for the 7-day window ending on
// refDate, oldest first. Feeds the week trend view.
func ComputeWeekly(entries []domain.LogEntry, refDate time.Time, loc *time.Location) []Daily {
	week := make([]Daily, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := refDate.In(loc).AddDate(0, 0, -offset)
		week = append(week, ComputeDaily(entries, day, loc))
	}
	return week
}

// matchesDay reports whether an entry falls on refDate's calendar day.
// Entry dates are date-only stamps, so they are compared as stored rather than
// converted into loc; only refDate is resolved through the calendar zone.
func matchesDay(e domain.LogEntry, refDate time.Time, loc *time.Location) bool {
	if !e.HasValidDate() {
		return false
	}
	ref := refDate.In(loc)
	return e.Date.Year() == ref.Year() &&
		e.Date.Month() == ref.Month() &&
		e.Date.Day() == ref.Day()
}
