package repository

import (
	"context"
	"testing"

	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	a := testutil.NewTestActivity("Gym",
		testutil.WithSchedule(domain.Weekly(1, 3, 5)),
		testutil.WithCarryForward(),
	)
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gym", got.Name)
	assert.Equal(t, domain.ScheduleWeekly, got.Schedule.Kind)
	assert.Equal(t, []int{1, 3, 5}, got.Schedule.Weekdays)
	assert.True(t, got.CarryForward)
	assert.Nil(t, got.StoppedAt)
}

func TestActivityRepo_CumulativeRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	a := testutil.NewTestActivity("Water",
		testutil.WithKind(domain.KindCumulative),
		testutil.WithTarget(2000, domain.AggregateSum),
	)
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TargetValue)
	assert.Equal(t, 2000.0, *got.TargetValue)
	assert.Equal(t, domain.AggregateSum, got.Aggregation)
}

func TestActivityRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepo_ListExcludesStopped(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	active := testutil.NewTestActivity("Active")
	stopped := testutil.NewTestActivity("Stopped")
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, stopped))
	require.NoError(t, repo.Stop(ctx, stopped.ID, testutil.Day("2024-02-01")))

	activities, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, active.ID, activities[0].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Resume(ctx, stopped.ID))
	activities, err = repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, activities, 2)
}

func TestActivityRepo_ChildrenAndCascade(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	logRepo := NewSQLiteLogRepo(database)
	ctx := context.Background()

	parent := testutil.NewTestActivity("Routine", testutil.WithKind(domain.KindContainer))
	child := testutil.NewTestActivity("X", testutil.WithParent(parent.ID))
	require.NoError(t, repo.Create(ctx, parent))
	require.NoError(t, repo.Create(ctx, child))
	require.NoError(t, logRepo.Create(ctx, testutil.Completed(child.ID, "2024-01-05")))

	children, err := repo.ListChildren(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)

	// Deleting the child removes its logs via FK cascade.
	require.NoError(t, repo.Delete(ctx, child.ID))
	logs, err := logRepo.ListByActivity(ctx, child.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestActivityRepo_AdhocDateRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	a := testutil.NewTestActivity("Dentist",
		testutil.WithSchedule(domain.Adhoc(testutil.Day("2024-02-08"))),
	)
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Schedule.Date)
	assert.Equal(t, "2024-02-08", domain.DayKey(*got.Schedule.Date))
}
