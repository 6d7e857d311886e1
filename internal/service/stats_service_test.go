package service

import (
	"context"
	"testing"

	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/repository"
	"github.com/mkellner/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_TodaySkipsVacation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t, testutil.NewTestActivity("Meditate", testutil.WithCreatedAt(testutil.Day("2024-01-01"))))
	require.NoError(t, env.vacationSvc.Add(ctx, testutil.Day("2024-01-05")))

	items, err := env.statsSvc.Today(ctx, testutil.Day("2024-01-05"))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStatsService_TodayMarksCarriedItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t, testutil.NewTestActivity("Gym",
		testutil.WithSchedule(domain.Weekly(1)),
		testutil.WithCarryForward(),
		testutil.WithCreatedAt(testutil.Day("2024-02-05")),
	))

	items, err := env.statsSvc.Today(ctx, testutil.Day("2024-02-07"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Carried)
	assert.Equal(t, "2024-02-05", domain.DayKey(items[0].DueDate))
}

func TestStatsService_Stats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.create(t, testutil.NewTestActivity("Meditate", testutil.WithCreatedAt(testutil.Day("2024-01-01"))))
	for _, day := range []string{"2024-01-02", "2024-01-03", "2024-01-04"} {
		require.NoError(t, env.logs.Create(ctx, testutil.Completed(a.ID, day)))
	}

	stats, err := env.statsSvc.Stats(ctx, testutil.Day("2024-01-04"))
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 3, stats[0].CurrentStreak)
	assert.Equal(t, 3, stats[0].LongestStreak)
}

func TestStatsService_StatsSkipsStopped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.create(t, testutil.NewTestActivity("Old", testutil.WithCreatedAt(testutil.Day("2024-01-01"))))
	require.NoError(t, env.activitySvc.Stop(ctx, a.ID, testutil.Day("2024-01-03")))

	stats, err := env.statsSvc.Stats(ctx, testutil.Day("2024-01-10"))
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestStatsService_ActivityStreaksUnknownID(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.statsSvc.ActivityStreaks(context.Background(), "nope", testutil.Day("2024-01-04"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStatsService_Heatmap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.create(t, testutil.NewTestActivity("Meditate", testutil.WithCreatedAt(testutil.Day("2024-01-01"))))
	require.NoError(t, env.logs.Create(ctx, testutil.Completed(a.ID, "2024-01-04")))
	require.NoError(t, env.vacationSvc.Add(ctx, testutil.Day("2024-01-03")))

	cells, err := env.statsSvc.Heatmap(ctx, testutil.Day("2024-01-05"), 3)
	require.NoError(t, err)
	require.Len(t, cells, 3)

	assert.Equal(t, "2024-01-03", domain.DayKey(cells[0].Date))
	assert.True(t, cells[0].Vacation)
	assert.InDelta(t, 1.0, cells[1].Rate, 1e-9)
	assert.True(t, cells[1].Applicable)
	assert.True(t, cells[2].Applicable)
	assert.InDelta(t, 0.0, cells[2].Rate, 1e-9)
}

func TestStatsService_DayCompletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.create(t, testutil.NewTestActivity("Meditate", testutil.WithCreatedAt(testutil.Day("2024-01-01"))))
	b := env.create(t, testutil.NewTestActivity("Stretch", testutil.WithCreatedAt(testutil.Day("2024-01-01"))))
	require.NoError(t, env.logs.Create(ctx, testutil.Completed(a.ID, "2024-01-04")))
	_ = b

	res, err := env.statsSvc.DayCompletion(ctx, testutil.Day("2024-01-04"))
	require.NoError(t, err)
	assert.True(t, res.Applicable)
	assert.InDelta(t, 0.5, res.Rate, 1e-9)
}
