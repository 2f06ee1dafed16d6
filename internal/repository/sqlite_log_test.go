package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/overwatch/internal/normalize"
	"github.com/alexanderramin/overwatch/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRepo_AppendAndListRows(t *testing.T) {
	repo := NewSQLiteLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	entry := testutil.NewTestEntry(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 120,
		testutil.WithRot(10), testutil.WithOutput(4), testutil.WithNotes("mechanics"))
	require.NoError(t, repo.Append(ctx, entry.Row()))

	rows, err := repo.ListRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	got := normalize.Entry(rows[0])
	assert.Equal(t, "2024-01-01", got.Date.Format("2006-01-02"))
	assert.Equal(t, "Physics", got.Subject)
	assert.Equal(t, 120, got.DurationMin)
	assert.Equal(t, 10, got.RotMin)
	assert.Equal(t, 4, got.Output)
	assert.Equal(t, "mechanics", got.Notes)
}

func TestLogRepo_InsertionOrderPreserved(t *testing.T) {
	repo := NewSQLiteLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first := testutil.NewTestEntry(day, 30, testutil.WithSubject("Math"))
	second := testutil.NewTestEntry(day, 60, testutil.WithSubject("Biology"))
	require.NoError(t, repo.Append(ctx, first.Row()))
	require.NoError(t, repo.Append(ctx, second.Row()))

	rows, err := repo.ListRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Math", rows[0]["Subject"])
	assert.Equal(t, "Biology", rows[1]["Subject"])
}

func TestLogRepo_AppendCoercesUntypedCells(t *testing.T) {
	repo := NewSQLiteLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	// Snapshot imports hand over JSON-decoded rows: float64 numbers,
	// possibly missing columns.
	require.NoError(t, repo.Append(ctx, map[string]any{
		"Date":     "2024-01-01",
		"Duration": float64(90),
		"Focus":    "85",
	}))

	rows, err := repo.ListRows(ctx)
	require.NoError(t, err)
	got := normalize.Entry(rows[0])
	assert.Equal(t, 90, got.DurationMin)
	assert.Equal(t, 85, got.FocusPct)
	assert.Equal(t, "Metric", string(got.Kind))
}

func TestLogRepo_Count(t *testing.T) {
	repo := NewSQLiteLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	entry := testutil.NewTestEntry(time.Now(), 30)
	require.NoError(t, repo.Append(ctx, entry.Row()))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
