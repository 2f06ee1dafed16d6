package testutil

import (
	"time"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/google/uuid"
)

// EntryOption mutates a fixture log entry.
type EntryOption func(*domain.LogEntry)

func WithKind(k domain.EntryKind) EntryOption {
	return func(e *domain.LogEntry) {
		e.Kind = k
	}
}

func WithSubject(s string) EntryOption {
	return func(e *domain.LogEntry) {
		e.Subject = s
	}
}

func WithRot(min int) EntryOption {
	return func(e *domain.LogEntry) {
		e.RotMin = min
	}
}

func WithFocus(pct int) EntryOption {
	return func(e *domain.LogEntry) {
		e.FocusPct = pct
	}
}

func WithOutput(n int) EntryOption {
	return func(e *domain.LogEntry) {
		e.Output = n
	}
}

func WithNotes(n string) EntryOption {
	return func(e *domain.LogEntry) {
		e.Notes = n
	}
}

// NewTestEntry builds a Metric log entry for the given date and duration.
func NewTestEntry(date time.Time, durationMin int, opts ...EntryOption) domain.LogEntry {
	e := domain.LogEntry{
		ID:          uuid.New().String(),
		Date:        date,
		Time:        "07:00:00",
		Kind:        domain.KindMetric,
		Sector:      string(domain.ProtocolMWS),
		Subject:     "Physics",
		Activity:    "Deep Study",
		DurationMin: durationMin,
		FocusPct:    80,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestSlot builds a free-text timetable slot.
func NewTestSlot(dayType, timeSlot, task string) domain.TimetableSlot {
	return domain.TimetableSlot{
		DayType: dayType,
		Span:    domain.SlotSpan{FreeText: timeSlot},
		Task:    task,
	}
}
