package domain

import "time"

// RawRow is one row as handed over by the store adapter: an open mapping of
// column name to primitive value. Column presence and cell typing vary across
// schema versions; the normalize package converts RawRows into LogEntries.
type RawRow map[string]any

// Log column names, fixed by the store contract.
const (
	ColDate     = "Date"
	ColTime     = "Time"
	ColType     = "Type"
	ColSector   = "Sector"
	ColSubject  = "Subject"
	ColActivity = "Activity"
	ColDuration = "Duration"
	ColOutput   = "Output"
	ColRot      = "Rot"
	ColFocus    = "Focus"
	ColNotes    = "Notes"
)

// LogEntry is one recorded event. Entries are append-only: the core never
// mutates or deletes them, corrections happen out of band against the store.
type LogEntry struct {
	ID          string
	Date        time.Time // zero value marks an invalid/unparsable date
	Time        string
	Kind        EntryKind
	Sector      string
	Subject     string
	Activity    string
	DurationMin int
	Output      int
	RotMin      int
	FocusPct    int
	Notes       string
}

// HasValidDate reports whether the entry carries a parsable date.
// Entries without one are data, not faults; they are excluded from any
// date-scoped aggregation but retained for display.
func (e LogEntry) HasValidDate() bool {
	return !e.Date.IsZero()
}

// IsMetric reports whether the entry participates in KPI arithmetic.
func (e LogEntry) IsMetric() bool {
	return e.Kind == KindMetric
}

// Row converts the entry back into the store's column layout.
func (e LogEntry) Row() RawRow {
	date := ""
	if e.HasValidDate() {
		date = e.Date.Format("2006-01-02")
	}
	return RawRow{
		"ID":        e.ID,
		ColDate:     date,
		ColTime:     e.Time,
		ColType:     string(e.Kind),
		ColSector:   e.Sector,
		ColSubject:  e.Subject,
		ColActivity: e.Activity,
		ColDuration: e.DurationMin,
		ColOutput:   e.Output,
		ColRot:      e.RotMin,
		ColFocus:    e.FocusPct,
		ColNotes:    e.Notes,
	}
}
