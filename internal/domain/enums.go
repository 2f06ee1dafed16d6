package domain

import "sort"

type EntryKind string

const (
	KindMetric  EntryKind = "Metric"
	KindAnomaly EntryKind = "Anomaly"
)

// ValidActivities is the canonical set of accepted activity tags.
// Activities are informational grouping labels, not enforced retroactively.
var ValidActivities = map[string]bool{
	"Deep Study": true,
	"Mock Test":  true,
	"Revision":   true,
	"Class":      true,
}

// Activities returns the accepted activity tags sorted alphabetically.
func Activities() []string {
	names := make([]string, 0, len(ValidActivities))
	for name := range ValidActivities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProtocolLabel is the day-of-week-derived schedule track.
type ProtocolLabel string

const (
	ProtocolMWS    ProtocolLabel = "MWS Protocol"
	ProtocolTTS    ProtocolLabel = "TTS Protocol"
	ProtocolSunday ProtocolLabel = "Sunday Special"
)

// AnomalySentinel is the subject/activity value carried by anomaly entries.
const AnomalySentinel = "—"
