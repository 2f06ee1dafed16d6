package advisory

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/metrics"
	"github.com/alexanderramin/overwatch/internal/testutil"
	"github.com/stretchr/testify/assert"
)

var day = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestRender_IncludesProtocolAndKPIs(t *testing.T) {
	snapshot := Context{
		Protocol: domain.ProtocolMWS,
		Date:     "2024-01-01",
		Daily:    metrics.Daily{RotMin: 10, EFS: 81, Velocity: 2.0, ActiveHours: 2.0},
	}

	out := snapshot.Render()

	assert.Contains(t, out, "MWS Protocol")
	assert.Contains(t, out, "rot=10")
	assert.Contains(t, out, "efs=81")
	assert.Contains(t, out, "velocity=2.00")
}

func TestRender_CapsAtFiveNewestFirst(t *testing.T) {
	var entries []domain.LogEntry
	subjects := []string{"Math", "Physics", "Chemistry", "Biology", "English", "GAT", "Math"}
	for _, s := range subjects {
		entries = append(entries, testutil.NewTestEntry(day, 60, testutil.WithSubject(s)))
	}

	snapshot := Context{Protocol: domain.ProtocolTTS, Date: "2024-01-01", Entries: entries}
	out := snapshot.Render()

	// The first two appended entries fall outside the cap.
	assert.NotContains(t, out, "Physics")
	lines := strings.Split(out, "\n")
	var dataLines []string
	for _, l := range lines {
		if strings.Contains(l, "Deep Study") {
			dataLines = append(dataLines, l)
		}
	}
	assert.Len(t, dataLines, 5)
	// Newest (last appended) renders first.
	assert.Contains(t, dataLines[0], "Math")
	assert.Contains(t, dataLines[1], "GAT")
}

func TestRender_EmptySectionsGetMarkers(t *testing.T) {
	snapshot := Context{Protocol: domain.ProtocolSunday, Date: "2024-01-07"}

	out := snapshot.Render()

	assert.Contains(t, out, "none recorded")
	assert.Contains(t, out, "no schedule on file")
}

func TestRender_AnomalyNotesShown(t *testing.T) {
	anomaly := testutil.NewTestEntry(day, 0,
		testutil.WithKind(domain.KindAnomaly),
		testutil.WithNotes("fever, skipped evening block"))

	snapshot := Context{
		Protocol: domain.ProtocolMWS,
		Date:     "2024-01-01",
		Entries:  []domain.LogEntry{anomaly},
	}

	assert.Contains(t, snapshot.Render(), "fever, skipped evening block")
}

func TestRender_SlotsListed(t *testing.T) {
	snapshot := Context{
		Protocol: domain.ProtocolMWS,
		Date:     "2024-01-01",
		Slots: []domain.TimetableSlot{
			testutil.NewTestSlot("MWS", "06:00 - 08:00", "Physics"),
			{DayType: "MWS", Span: domain.SlotSpan{Start: "09:00", End: "10:00"}, Task: "Chemistry"},
		},
	}

	out := snapshot.Render()

	assert.Contains(t, out, "06:00 - 08:00  Physics")
	assert.Contains(t, out, "09:00 - 10:00  Chemistry")
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("intervention")
	assert.NoError(t, err)
	assert.Equal(t, ModeIntervention, mode)

	_, err = ParseMode("séance")
	assert.Error(t, err)
}
