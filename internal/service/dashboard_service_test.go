package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/protocol"
	"github.com/alexanderramin/overwatch/internal/repository"
	"github.com/alexanderramin/overwatch/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashboardFixture wires a dashboard service over a fresh in-memory store.
type dashboardFixture struct {
	logs      repository.LogRepo
	slots     repository.TimetableRepo
	profiles  repository.ProfileRepo
	dashboard DashboardService
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	logs := repository.NewSQLiteLogRepo(database)
	slots := repository.NewSQLiteTimetableRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	return &dashboardFixture{
		logs:      logs,
		slots:     slots,
		profiles:  profiles,
		dashboard: NewDashboardService(logs, slots, profiles, time.UTC),
	}
}

// monday is an MWS day.
var monday = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func TestSnapshot_EmptyStoreGivesZeroKPIs(t *testing.T) {
	f := newDashboardFixture(t)

	d, err := f.dashboard.Snapshot(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, domain.ProtocolMWS, d.Protocol)
	assert.Zero(t, d.Daily.RotMin)
	assert.Zero(t, d.Daily.EFS)
	assert.Zero(t, d.Daily.Velocity)
	assert.Empty(t, d.TodayEntries)
	assert.Empty(t, d.MatchedSlots)
	assert.False(t, d.RotExceeded)
	assert.Equal(t, 480, d.Profile.EFSTarget, "profile defaults apply")
}

func TestSnapshot_ComputesDailyKPIs(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry(monday, 120, testutil.WithRot(10), testutil.WithOutput(4))
	require.NoError(t, f.logs.Append(ctx, entry.Row()))

	d, err := f.dashboard.Snapshot(ctx, monday)
	require.NoError(t, err)

	assert.Equal(t, 10, d.Daily.RotMin)
	assert.Equal(t, 81, d.Daily.EFS)
	assert.Equal(t, 2.0, d.Daily.Velocity)
	assert.Len(t, d.TodayEntries, 1)
	assert.Equal(t, map[string]int{"Physics": 120}, d.Distribution)
	assert.Len(t, d.Weekly, 7)
}

func TestSnapshot_MatchesSlotsForProtocol(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	require.NoError(t, f.slots.Append(ctx, testutil.NewTestSlot("MWS", "06:00", "Physics").Row()))
	require.NoError(t, f.slots.Append(ctx, testutil.NewTestSlot("TTS", "06:00", "Biology").Row()))

	d, err := f.dashboard.Snapshot(ctx, monday)
	require.NoError(t, err)

	require.Len(t, d.MatchedSlots, 1)
	assert.Equal(t, "Physics", d.MatchedSlots[0].Task)
	assert.Len(t, d.AllSlots, 2)
}

func TestSnapshot_RotThresholdPolicy(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry(monday, 60, testutil.WithRot(90))
	require.NoError(t, f.logs.Append(ctx, entry.Row()))

	// Default profile: limit 60, auto-advise off.
	d, err := f.dashboard.Snapshot(ctx, monday)
	require.NoError(t, err)
	assert.True(t, d.RotExceeded)
	assert.False(t, d.AutoAdvise, "warning only unless the profile opts in")

	require.NoError(t, f.profiles.Upsert(ctx, &domain.Profile{
		EFSTarget: 480, RotLimitMin: 60, AutoAdvise: true, Timezone: "IST",
	}))

	d, err = f.dashboard.Snapshot(ctx, monday)
	require.NoError(t, err)
	assert.True(t, d.AutoAdvise)
}

func TestSnapshot_AnomalyRetainedInTodayView(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry(monday, 120, testutil.WithRot(10), testutil.WithOutput(4))
	require.NoError(t, f.logs.Append(ctx, entry.Row()))
	anomaly := testutil.NewTestEntry(monday, 0,
		testutil.WithKind(domain.KindAnomaly), testutil.WithNotes("power cut"))
	require.NoError(t, f.logs.Append(ctx, anomaly.Row()))

	d, err := f.dashboard.Snapshot(ctx, monday)
	require.NoError(t, err)

	// The anomaly shows up in the day view while carrying no KPI weight.
	require.Len(t, d.TodayEntries, 2)
	assert.Equal(t, domain.KindAnomaly, d.TodayEntries[1].Kind)
	assert.Equal(t, "power cut", d.TodayEntries[1].Notes)
	assert.Equal(t, 81, d.Daily.EFS)
	assert.Equal(t, map[string]int{"Physics": 120}, d.Distribution)
}

func TestSnapshot_ProfileTimezoneSteersProtocol(t *testing.T) {
	f := newDashboardFixture(t)
	dashboard := NewDashboardService(f.logs, f.slots, f.profiles, protocol.IST)
	ctx := context.Background()

	// Saturday 20:00 UTC is already Sunday 01:30 in the IST default.
	now := time.Date(2024, 1, 6, 20, 0, 0, 0, time.UTC)

	d, err := dashboard.Snapshot(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, domain.ProtocolSunday, d.Protocol)

	require.NoError(t, f.profiles.Upsert(ctx, &domain.Profile{
		EFSTarget: 480, RotLimitMin: 60, Timezone: "UTC",
	}))

	d, err = dashboard.Snapshot(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, domain.ProtocolTTS, d.Protocol, "stored timezone moves the day boundary")
	assert.Equal(t, "2024-01-06", d.Now.Format("2006-01-02"))
}

func TestSnapshot_AdvisoryContext(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry(monday, 120, testutil.WithRot(10), testutil.WithOutput(4))
	require.NoError(t, f.logs.Append(ctx, entry.Row()))

	d, err := f.dashboard.Snapshot(ctx, monday)
	require.NoError(t, err)

	snap := d.AdvisoryContext()
	out := snap.Render()
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "MWS Protocol")
	assert.Contains(t, out, "efs=81")
}
