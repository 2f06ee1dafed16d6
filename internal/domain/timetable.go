package domain

// Timetable column names. Older sheets stored one free-text Time_Slot column;
// a later revision stores structured Start/End. Both shapes are accepted.
const (
	ColDayType  = "Day_Type"
	ColTimeSlot = "Time_Slot"
	ColStart    = "Start"
	ColEnd      = "End"
	ColTask     = "Task"
)

// SlotSpan is the time range of a scheduled commitment. Exactly one shape is
// populated: structured Start/End, or the verbatim free-text range.
type SlotSpan struct {
	Start    string
	End      string
	FreeText string
}

// Structured reports whether the span carries parsed start/end times.
func (s SlotSpan) Structured() bool {
	return s.Start != "" || s.End != ""
}

// Display renders the span for output regardless of shape.
func (s SlotSpan) Display() string {
	if s.Structured() {
		return s.Start + " - " + s.End
	}
	return s.FreeText
}

// TimetableSlot is one scheduled commitment. Duplicate and overlapping slots
// are permitted; there is no uniqueness constraint.
type TimetableSlot struct {
	DayType string
	Span    SlotSpan
	Task    string
}

// Row converts the slot back into the store's column layout, preserving
// whichever span shape the slot carries.
func (t TimetableSlot) Row() RawRow {
	row := RawRow{
		ColDayType: t.DayType,
		ColTask:    t.Task,
	}
	if t.Span.Structured() {
		row[ColStart] = t.Span.Start
		row[ColEnd] = t.Span.End
	} else {
		row[ColTimeSlot] = t.Span.FreeText
	}
	return row
}
