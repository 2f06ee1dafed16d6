// Package snapshot defines the full-state export format: a self-describing
// JSON document carrying logs, subjects, timetable, and profile. Imports are
// validated before any state is touched.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/overwatch/internal/domain"
)

// Snapshot is the top-level export document.
//
// Logs is a pointer so decoding can tell "key absent" apart from "empty
// list"; a snapshot without the logs key is rejected outright.
type Snapshot struct {
	Version   int              `json:"version"`
	Logs      *[]domain.RawRow `json:"logs"`
	Subjects  []string         `json:"subjects"`
	Timetable []domain.RawRow  `json:"timetable"`
	Profile   *ProfileExport   `json:"profile,omitempty"`
}

// ProfileExport is the profile record inside a snapshot.
type ProfileExport struct {
	EFSTarget   int    `json:"efs_target"`
	RotLimitMin int    `json:"rot_limit_min"`
	AutoAdvise  bool   `json:"auto_advise"`
	Timezone    string `json:"timezone"`
}

// CurrentVersion is written into every export.
const CurrentVersion = 1

// Decode reads and parses a snapshot document without validating it.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}

// Encode writes the snapshot as indented JSON.
func Encode(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// LogRows returns the snapshot's log rows, nil-safe.
func (s *Snapshot) LogRows() []domain.RawRow {
	if s.Logs == nil {
		return nil
	}
	return *s.Logs
}
