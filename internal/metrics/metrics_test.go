package metrics

import (
	"testing"
	"time"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/stretchr/testify/assert"
)

var jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func metric(date time.Time, duration, output, rot, focus int) domain.LogEntry {
	return domain.LogEntry{
		Date:        date,
		Kind:        domain.KindMetric,
		Subject:     "Physics",
		DurationMin: duration,
		Output:      output,
		RotMin:      rot,
		FocusPct:    focus,
	}
}

func TestComputeDaily_EmptyIsAllZeros(t *testing.T) {
	got := ComputeDaily(nil, jan1, time.UTC)

	assert.Equal(t, Daily{}, got)
}

func TestComputeDaily_SpecExample(t *testing.T) {
	entries := []domain.LogEntry{metric(jan1, 120, 4, 10, 80)}

	got := ComputeDaily(entries, jan1, time.UTC)

	assert.Equal(t, 10, got.RotMin)
	assert.Equal(t, 81, got.EFS) // 120*0.8 - 10*1.5 = 81
	assert.Equal(t, 2.0, got.ActiveHours)
	assert.Equal(t, 2.0, got.Velocity)
}

func TestComputeDaily_NegativeEFSNotClamped(t *testing.T) {
	entries := []domain.LogEntry{metric(jan1, 10, 0, 20, 0)}

	got := ComputeDaily(entries, jan1, time.UTC)

	assert.Equal(t, -30, got.EFS)
}

func TestComputeDaily_VelocityZeroWithoutHours(t *testing.T) {
	// Output recorded but no measured duration: velocity is defined as 0,
	// not a division fault.
	entries := []domain.LogEntry{metric(jan1, 0, 50, 0, 90)}

	got := ComputeDaily(entries, jan1, time.UTC)

	assert.Zero(t, got.ActiveHours)
	assert.Zero(t, got.Velocity)
}

func TestComputeDaily_AnomaliesCarryNoWeight(t *testing.T) {
	anomaly := domain.LogEntry{
		Date:        jan1,
		Kind:        domain.KindAnomaly,
		DurationMin: 999,
		Output:      999,
		RotMin:      999,
		FocusPct:    100,
		Notes:       "family function all day",
	}
	entries := []domain.LogEntry{metric(jan1, 120, 4, 10, 80), anomaly}

	withAnomaly := ComputeDaily(entries, jan1, time.UTC)
	without := ComputeDaily(entries[:1], jan1, time.UTC)

	assert.Equal(t, without, withAnomaly)
}

func TestComputeDaily_InvalidDatesNeverMatch(t *testing.T) {
	entries := []domain.LogEntry{metric(time.Time{}, 120, 4, 0, 80)}

	got := ComputeDaily(entries, jan1, time.UTC)

	assert.Equal(t, Daily{}, got)
}

func TestComputeDaily_OtherDaysExcluded(t *testing.T) {
	entries := []domain.LogEntry{
		metric(jan1, 60, 2, 0, 100),
		metric(jan1.AddDate(0, 0, 1), 600, 20, 0, 100),
	}

	got := ComputeDaily(entries, jan1, time.UTC)

	assert.Equal(t, 1.0, got.ActiveHours)
	assert.Equal(t, 60, got.EFS)
}

func TestComputeDaily_VelocityRoundsToTwoPlaces(t *testing.T) {
	// 5 output over 1.5h = 3.3333... -> 3.33
	entries := []domain.LogEntry{metric(jan1, 90, 5, 0, 100)}

	got := ComputeDaily(entries, jan1, time.UTC)

	assert.Equal(t, 3.33, got.Velocity)
}

func TestComputeDaily_SumsAcrossEntries(t *testing.T) {
	entries := []domain.LogEntry{
		metric(jan1, 60, 3, 5, 90),
		metric(jan1, 30, 1, 15, 50),
	}

	got := ComputeDaily(entries, jan1, time.UTC)

	assert.Equal(t, 20, got.RotMin)
	// 60*0.9 - 7.5 + 30*0.5 - 22.5 = 54 - 7.5 + 15 - 22.5 = 39
	assert.Equal(t, 39, got.EFS)
	assert.Equal(t, 1.5, got.ActiveHours)
	assert.Equal(t, 2.67, got.Velocity)
}

func TestSubjectDistribution(t *testing.T) {
	entries := []domain.LogEntry{
		metric(jan1, 60, 0, 0, 80),
		metric(jan1, 30, 0, 0, 80),
		{Date: jan1, Kind: domain.KindAnomaly, Subject: "Physics", DurationMin: 500},
	}
	entries[1].Subject = "Math"

	dist := SubjectDistribution(entries)

	assert.Equal(t, map[string]int{"Physics": 60, "Math": 30}, dist)
}

func TestComputeWeekly_WindowOldestFirst(t *testing.T) {
	entries := []domain.LogEntry{
		metric(jan1.AddDate(0, 0, -6), 60, 1, 0, 100),
		metric(jan1, 120, 4, 10, 80),
		metric(jan1.AddDate(0, 0, -10), 600, 9, 0, 100), // outside window
	}

	week := ComputeWeekly(entries, jan1, time.UTC)

	assert.Len(t, week, 7)
	assert.Equal(t, 60, week[0].EFS)
	assert.Equal(t, Daily{}, week[3])
	assert.Equal(t, 81, week[6].EFS)
}

func TestEntriesForDay(t *testing.T) {
	entries := []domain.LogEntry{
		metric(jan1, 60, 1, 0, 100),
		metric(jan1.AddDate(0, 0, 1), 60, 1, 0, 100),
		{Date: time.Time{}, Kind: domain.KindMetric},
	}

	day := EntriesForDay(entries, jan1, time.UTC)

	assert.Len(t, day, 1)
	assert.Equal(t, 60, day[0].DurationMin)
}

func TestEntriesForDay_KeepsAnomalies(t *testing.T) {
	// Anomalies carry no KPI weight but they are today's data: the day view
	// must retain them.
	entries := []domain.LogEntry{
		metric(jan1, 60, 1, 0, 100),
		{Date: jan1, Kind: domain.KindAnomaly, Notes: "power cut"},
		{Date: jan1.AddDate(0, 0, -1), Kind: domain.KindAnomaly},
	}

	day := EntriesForDay(entries, jan1, time.UTC)

	assert.Len(t, day, 2)
	assert.Equal(t, domain.KindAnomaly, day[1].Kind)
	assert.Equal(t, "power cut", day[1].Notes)
}
