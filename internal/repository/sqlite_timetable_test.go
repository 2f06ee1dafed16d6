package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/normalize"
	"github.com/alexanderramin/overwatch/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimetableRepo_AppendBothShapes(t *testing.T) {
	repo := NewSQLiteTimetableRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	freeText := testutil.NewTestSlot("MWS", "06:00 - 08:00", "Physics")
	structured := domain.TimetableSlot{
		DayType: "TTS",
		Span:    domain.SlotSpan{Start: "09:00", End: "10:30"},
		Task:    "Biology",
	}
	require.NoError(t, repo.Append(ctx, freeText.Row()))
	require.NoError(t, repo.Append(ctx, structured.Row()))

	rows, err := repo.ListRows(ctx)
	require.NoError(t, err)
	slots := normalize.Slots(rows)
	require.Len(t, slots, 2)

	assert.False(t, slots[0].Span.Structured())
	assert.Equal(t, "06:00 - 08:00", slots[0].Span.Display())
	assert.True(t, slots[1].Span.Structured())
	assert.Equal(t, "09:00 - 10:30", slots[1].Span.Display())
}

func TestTimetableRepo_DuplicatesAllowed(t *testing.T) {
	repo := NewSQLiteTimetableRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	slot := testutil.NewTestSlot("MWS", "06:00 - 08:00", "Physics")
	require.NoError(t, repo.Append(ctx, slot.Row()))
	require.NoError(t, repo.Append(ctx, slot.Row()))

	rows, err := repo.ListRows(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestTimetableRepo_Clear(t *testing.T) {
	repo := NewSQLiteTimetableRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestSlot("MWS", "06:00", "Physics").Row()))
	require.NoError(t, repo.Clear(ctx))

	rows, err := repo.ListRows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
