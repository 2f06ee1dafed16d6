package advisory

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/metrics"
)

// recentEntryCap bounds the context size: only this many of the most recently
// appended entries are included, newest first.
const recentEntryCap = 5

// Context is the bounded snapshot of recorded data offered to the assistant.
type Context struct {
	Protocol domain.ProtocolLabel
	Date     string
	Daily    metrics.Daily
	Entries  []domain.LogEntry
	Slots    []domain.TimetableSlot
}

// Render produces the stable text form of the snapshot for prompt inclusion.
// It cannot fail; empty sections render as explicit markers.
func (c Context) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s (%s)\n", c.Date, c.Protocol)
	fmt.Fprintf(&b, "Today: rot=%d min, efs=%d, velocity=%.2f, active=%.1f h\n",
		c.Daily.RotMin, c.Daily.EFS, c.Daily.Velocity, c.Daily.ActiveHours)

	b.WriteString("\nRecent entries (newest first):\n")
	recent := recentEntries(c.Entries)
	if len(recent) == 0 {
		b.WriteString("  none recorded\n")
	} else {
		fmt.Fprintf(&b, "  %-10s  %-8s  %-10s  %-12s  %4s  %4s  %4s  %5s\n",
			"Date", "Type", "Subject", "Activity", "Dur", "Out", "Rot", "Focus")
		for _, e := range recent {
			date := "?"
			if e.HasValidDate() {
				date = e.Date.Format("2006-01-02")
			}
			fmt.Fprintf(&b, "  %-10s  %-8s  %-10s  %-12s  %4d  %4d  %4d  %4d%%\n",
				date, e.Kind, e.Subject, e.Activity, e.DurationMin, e.Output, e.RotMin, e.FocusPct)
			if e.Kind == domain.KindAnomaly && e.Notes != "" {
				fmt.Fprintf(&b, "    note: %s\n", e.Notes)
			}
		}
	}

	b.WriteString("\nSchedule:\n")
	if len(c.Slots) == 0 {
		b.WriteString("  no schedule on file\n")
	} else {
		for _, slot := range c.Slots {
			fmt.Fprintf(&b, "  %s  %s\n", slot.Span.Display(), slot.Task)
		}
	}

	return b.String()
}

// recentEntries returns up to recentEntryCap entries in reverse append order.
func recentEntries(entries []domain.LogEntry) []domain.LogEntry {
	n := len(entries)
	if n > recentEntryCap {
		n = recentEntryCap
	}
	recent := make([]domain.LogEntry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		recent = append(recent, entries[i])
	}
	return recent
}
