package protocol

import (
	"time"

	"github.com/alexanderramin/overwatch/internal/domain"
)

// Select maps a calendar day to its schedule track: Mon/Wed/Fri run the MWS
// protocol, Tue/Thu/Sat the TTS protocol, Sunday is special. The weekday is
// evaluated in loc so the label never flips across deployments.
func Select(t time.Time, loc *time.Location) domain.ProtocolLabel {
	switch t.In(loc).Weekday() {
	case time.Monday, time.Wednesday, time.Friday:
		return domain.ProtocolMWS
	case time.Tuesday, time.Thursday, time.Saturday:
		return domain.ProtocolTTS
	default:
		return domain.ProtocolSunday
	}
}
