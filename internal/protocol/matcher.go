package protocol

import (
	"strings"

	"github.com/alexanderramin/overwatch/internal/domain"
)

// MatchSlots filters timetable slots applicable to the given protocol.
//
// A slot matches when its day-type label contains the protocol's first token
// ("MWS" for "MWS Protocol"), case-insensitively. Substring matching is
// deliberate: stored day-type labels are free text ("mws-morning" still
// matches). When no slot carries a day type at all the timetable predates the
// column, so the full list is returned unfiltered rather than hiding
// everything. An empty result is valid, never an error.
func MatchSlots(slots []domain.TimetableSlot, label domain.ProtocolLabel) []domain.TimetableSlot {
	token := strings.ToLower(firstToken(string(label)))
	if token == "" {
		return slots
	}

	anyDayType := false
	matched := make([]domain.TimetableSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.DayType == "" {
			continue
		}
		anyDayType = true
		if strings.Contains(strings.ToLower(slot.DayType), token) {
			matched = append(matched, slot)
		}
	}

	if !anyDayType {
		return slots
	}
	return matched
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
