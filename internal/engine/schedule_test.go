package engine

import (
	"testing"
	"time"

	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIsScheduled_Daily(t *testing.T) {
	a := testutil.NewTestActivity("Meditate", testutil.WithCreatedAt(testutil.Day("2024-01-01")))

	for d := testutil.Day("2024-01-01"); d.Before(testutil.Day("2024-02-01")); d = d.AddDate(0, 0, 1) {
		assert.True(t, IsScheduled(a, d), "daily should fire on %s", domain.DayKey(d))
	}
}

func TestIsScheduled_WeeklyISOWeekdays(t *testing.T) {
	a := testutil.NewTestActivity("Gym",
		testutil.WithSchedule(domain.Weekly(1, 3, 5)),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)

	// 2024-02-05 is a Monday.
	week := []struct {
		day  string
		want bool
	}{
		{"2024-02-05", true},  // Mon
		{"2024-02-06", false}, // Tue
		{"2024-02-07", true},  // Wed
		{"2024-02-08", false}, // Thu
		{"2024-02-09", true},  // Fri
		{"2024-02-10", false}, // Sat
		{"2024-02-11", false}, // Sun
	}
	for _, tc := range week {
		assert.Equal(t, tc.want, IsScheduled(a, testutil.Day(tc.day)), tc.day)
	}
}

func TestIsScheduled_Monthly(t *testing.T) {
	a := testutil.NewTestActivity("Pay rent",
		testutil.WithSchedule(domain.Monthly(1, 15)),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)

	assert.True(t, IsScheduled(a, testutil.Day("2024-03-01")))
	assert.True(t, IsScheduled(a, testutil.Day("2024-03-15")))
	assert.False(t, IsScheduled(a, testutil.Day("2024-03-14")))
}

func TestIsScheduled_EmptySetsNeverFire(t *testing.T) {
	weekly := testutil.NewTestActivity("w", testutil.WithSchedule(domain.Weekly()))
	monthly := testutil.NewTestActivity("m", testutil.WithSchedule(domain.Monthly()))

	d := testutil.Day("2024-02-05")
	assert.False(t, IsScheduled(weekly, d))
	assert.False(t, IsScheduled(monthly, d))
}

func TestIsScheduled_StickyAndAdhoc(t *testing.T) {
	sticky := testutil.NewTestActivity("Backlog", testutil.WithSchedule(domain.Sticky()))
	adhoc := testutil.NewTestActivity("Dentist",
		testutil.WithSchedule(domain.Adhoc(testutil.Day("2024-02-08"))),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)

	assert.False(t, IsScheduled(sticky, testutil.Day("2024-02-05")), "sticky presence is not calendar-driven")
	assert.True(t, IsScheduled(adhoc, testutil.Day("2024-02-08")))
	assert.False(t, IsScheduled(adhoc, testutil.Day("2024-02-09")))
}

func TestIsScheduled_LifetimeBounds(t *testing.T) {
	a := testutil.NewTestActivity("Meditate",
		testutil.WithCreatedAt(testutil.Day("2024-01-10")),
		testutil.WithStoppedAt(testutil.Day("2024-02-01")),
	)

	assert.False(t, IsScheduled(a, testutil.Day("2024-01-09")), "before creation")
	assert.True(t, IsScheduled(a, testutil.Day("2024-01-10")))
	assert.True(t, IsScheduled(a, testutil.Day("2024-01-31")))
	assert.False(t, IsScheduled(a, testutil.Day("2024-02-01")), "at stop date")
	assert.False(t, IsScheduled(a, testutil.Day("2024-02-02")), "after stop date")
}

func TestIsScheduled_Purity(t *testing.T) {
	a := testutil.NewTestActivity("Gym",
		testutil.WithSchedule(domain.Weekly(1, 3, 5)),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	d := testutil.Day("2024-02-05")

	first := IsScheduled(a, d)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, IsScheduled(a, d))
	}
}

func TestIsScheduled_TimeOfDayIrrelevant(t *testing.T) {
	a := testutil.NewTestActivity("Gym",
		testutil.WithSchedule(domain.Weekly(1)),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	noon := testutil.Day("2024-02-05").Add(12 * time.Hour)

	assert.True(t, IsScheduled(a, noon))
}
