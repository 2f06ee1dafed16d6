// Package normalize is the boundary between the store's open row schema and
// the closed LogEntry type. It is best-effort by contract: malformed cells are
// data, not faults, so nothing in this package returns an error.
package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/overwatch/internal/domain"
)

// dateLayouts are tried in order when parsing the Date column.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	time.RFC3339,
}

// Entries coerces raw store rows into typed log entries.
// Unparsable dates become the zero-time invalid marker, non-numeric numerics
// become 0, a missing Type column defaults to Metric.
func Entries(rows []domain.RawRow) []domain.LogEntry {
	entries := make([]domain.LogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry(row))
	}
	return entries
}

// Entry normalizes a single raw row.
func Entry(row domain.RawRow) domain.LogEntry {
	kind := domain.EntryKind(str(row[domain.ColType]))
	if kind != domain.KindAnomaly {
		// Older rows lack the Type column entirely; treat anything that is
		// not explicitly an anomaly as a metric.
		kind = domain.KindMetric
	}

	focus := num(row[domain.ColFocus])
	if focus > 100 {
		focus = 100
	}

	return domain.LogEntry{
		ID:          str(row["ID"]),
		Date:        date(row[domain.ColDate]),
		Time:        str(row[domain.ColTime]),
		Kind:        kind,
		Sector:      str(row[domain.ColSector]),
		Subject:     str(row[domain.ColSubject]),
		Activity:    str(row[domain.ColActivity]),
		DurationMin: num(row[domain.ColDuration]),
		Output:      num(row[domain.ColOutput]),
		RotMin:      num(row[domain.ColRot]),
		FocusPct:    focus,
		Notes:       str(row[domain.ColNotes]),
	}
}

// Slots coerces raw timetable rows, accepting both the free-text Time_Slot
// shape and the structured Start/End shape.
func Slots(rows []domain.RawRow) []domain.TimetableSlot {
	slots := make([]domain.TimetableSlot, 0, len(rows))
	for _, row := range rows {
		span := domain.SlotSpan{
			Start: str(row[domain.ColStart]),
			End:   str(row[domain.ColEnd]),
		}
		if !span.Structured() {
			span.FreeText = str(row[domain.ColTimeSlot])
		}
		slots = append(slots, domain.TimetableSlot{
			DayType: str(row[domain.ColDayType]),
			Span:    span,
			Task:    str(row[domain.ColTask]),
		})
	}
	return slots
}

// date parses a cell into a calendar date, returning the zero time when the
// cell is missing or unparsable.
func date(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// num parses a cell into a non-negative integer, defaulting to 0 on any
// failure. Float cells (JSON numbers, sheet exports) are truncated toward zero.
func num(v any) int {
	n := 0
	switch t := v.(type) {
	case int:
		n = t
	case int64:
		n = int(t)
	case float64:
		if !math.IsNaN(t) && !math.IsInf(t, 0) {
			n = int(t)
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		if parsed, err := strconv.Atoi(s); err == nil {
			n = parsed
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			n = int(f)
		}
	}
	if n < 0 {
		return 0
	}
	return n
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
