package protocol

import (
	"os"
	"time"
)

// IST is the default calendar zone. The protocol must not flip with the host
// machine's ambient zone, so day boundaries anchor to a fixed offset.
var IST = time.FixedZone("IST", 5*3600+30*60)

// Zone resolves the calendar zone: the OVERWATCH_TZ environment variable if it
// names a loadable location, otherwise IST.
func Zone() *time.Location {
	if name := os.Getenv("OVERWATCH_TZ"); name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return IST
}

// ResolveZone resolves a profile timezone value against a fallback zone.
// The value wins when it names a loadable location; blank or unloadable
// values (including the fixed-offset "IST" label) keep the fallback.
func ResolveZone(name string, fallback *time.Location) *time.Location {
	if name == "" {
		return fallback
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return fallback
}

// Midnight truncates t to the start of its calendar day in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
