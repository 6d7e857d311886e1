package engine

import (
	"testing"

	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestActivityStatus_CheckboxSingleSession(t *testing.T) {
	a := testutil.NewTestActivity("Meditate", testutil.WithCreatedAt(testutil.Day("2024-01-01")))

	done := snapshotOf([]*domain.Activity{a}, []*domain.ActivityLog{
		testutil.Completed(a.ID, "2024-01-05"),
	}, nil)
	st := ActivityStatus(done, a, testutil.Day("2024-01-05"))
	assert.Equal(t, Status{Done: 1, Total: 1}, st)
	assert.True(t, st.Satisfied())

	missed := snapshotOf([]*domain.Activity{a}, nil, nil)
	st = ActivityStatus(missed, a, testutil.Day("2024-01-05"))
	assert.Equal(t, Status{Done: 0, Total: 1}, st)
	assert.False(t, st.Satisfied())
}

func TestActivityStatus_FullySkippedExcludedFromTotal(t *testing.T) {
	a := testutil.NewTestActivity("Meditate", testutil.WithCreatedAt(testutil.Day("2024-01-01")))
	s := snapshotOf([]*domain.Activity{a}, []*domain.ActivityLog{
		testutil.Skipped(a.ID, "2024-01-05", testutil.WithSkipReason("sick")),
	}, nil)

	st := ActivityStatus(s, a, testutil.Day("2024-01-05"))
	assert.Equal(t, Status{Skipped: 1}, st)
}

func TestActivityStatus_MultiSessionPartialSkip(t *testing.T) {
	a := testutil.NewTestActivity("Medication", testutil.WithCreatedAt(testutil.Day("2024-01-01")))
	slots := []*domain.TimeSlot{
		testutil.NewTestSlot(a.ID, "morning"),
		testutil.NewTestSlot(a.ID, "evening"),
	}

	// Morning completed, evening skipped: 1 of 1 remaining session done.
	s := NewSnapshot([]*domain.Activity{a}, []*domain.ActivityLog{
		testutil.Completed(a.ID, "2024-01-05", testutil.WithSlot("morning")),
		testutil.Skipped(a.ID, "2024-01-05", testutil.WithSlot("evening")),
	}, nil, slots)
	st := ActivityStatus(s, a, testutil.Day("2024-01-05"))
	assert.Equal(t, Status{Done: 1, Total: 1}, st)

	// Both skipped: fully excluded, tracked as skip.
	s = NewSnapshot([]*domain.Activity{a}, []*domain.ActivityLog{
		testutil.Skipped(a.ID, "2024-01-05", testutil.WithSlot("morning")),
		testutil.Skipped(a.ID, "2024-01-05", testutil.WithSlot("evening")),
	}, nil, slots)
	st = ActivityStatus(s, a, testutil.Day("2024-01-05"))
	assert.Equal(t, Status{Skipped: 1}, st)

	// Only morning completed: half done.
	s = NewSnapshot([]*domain.Activity{a}, []*domain.ActivityLog{
		testutil.Completed(a.ID, "2024-01-05", testutil.WithSlot("morning")),
	}, nil, slots)
	st = ActivityStatus(s, a, testutil.Day("2024-01-05"))
	assert.Equal(t, Status{Done: 1, Total: 2}, st)
}

func TestActivityStatus_CumulativeSum(t *testing.T) {
	a := testutil.NewTestActivity("Water",
		testutil.WithKind(domain.KindCumulative),
		testutil.WithTarget(2000, domain.AggregateSum),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	s := snapshotOf([]*domain.Activity{a}, []*domain.ActivityLog{
		testutil.Completed(a.ID, "2024-01-05", testutil.WithValue(500)),
		testutil.Completed(a.ID, "2024-01-05", testutil.WithValue(750)),
		testutil.Completed(a.ID, "2024-01-05", testutil.WithValue(800)),
	}, nil)

	st := ActivityStatus(s, a, testutil.Day("2024-01-05"))
	assert.Equal(t, 1.0, st.Done, "2050/2000 clamps to 1.0")
	assert.Equal(t, 1.0, st.Total)
}

func TestActivityStatus_CumulativePartialCredit(t *testing.T) {
	a := testutil.NewTestActivity("Water",
		testutil.WithKind(domain.KindCumulative),
		testutil.WithTarget(2000, domain.AggregateSum),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	s := snapshotOf([]*domain.Activity{a}, []*domain.ActivityLog{
		testutil.Completed(a.ID, "2024-01-05", testutil.WithValue(500)),
	}, nil)

	st := ActivityStatus(s, a, testutil.Day("2024-01-05"))
	assert.InDelta(t, 0.25, st.Done, 1e-9)
	assert.False(t, st.Satisfied())
}

func TestActivityStatus_CumulativeAverage(t *testing.T) {
	a := testutil.NewTestActivity("Mood",
		testutil.WithKind(domain.KindCumulative),
		testutil.WithTarget(4, domain.AggregateAverage),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	s := snapshotOf([]*domain.Activity{a}, []*domain.ActivityLog{
		testutil.Completed(a.ID, "2024-01-05", testutil.WithValue(3)),
		testutil.Completed(a.ID, "2024-01-05", testutil.WithValue(5)),
	}, nil)

	st := ActivityStatus(s, a, testutil.Day("2024-01-05"))
	assert.InDelta(t, 1.0, st.Done, 1e-9, "mean 4 meets target 4")
}

func TestActivityStatus_CumulativeWithoutTarget(t *testing.T) {
	a := testutil.NewTestActivity("Water",
		testutil.WithKind(domain.KindCumulative),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)

	s := snapshotOf([]*domain.Activity{a}, []*domain.ActivityLog{
		testutil.Completed(a.ID, "2024-01-05", testutil.WithValue(500)),
	}, nil)
	assert.Equal(t, Status{}, ActivityStatus(s, a, testutil.Day("2024-01-05")),
		"no target means nothing to measure")

	s = snapshotOf([]*domain.Activity{a}, []*domain.ActivityLog{
		testutil.Skipped(a.ID, "2024-01-05"),
	}, nil)
	assert.Equal(t, Status{Skipped: 1}, ActivityStatus(s, a, testutil.Day("2024-01-05")),
		"skip is still tracked")
}

func TestActivityStatus_ContainerSumsChildren(t *testing.T) {
	container := testutil.NewTestActivity("Morning Routine",
		testutil.WithKind(domain.KindContainer),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	x := testutil.NewTestActivity("X",
		testutil.WithParent(container.ID),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	y := testutil.NewTestActivity("Y",
		testutil.WithSchedule(domain.Weekly(1, 3, 5)),
		testutil.WithParent(container.ID),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	all := []*domain.Activity{container, x, y}

	// Tuesday 2024-01-09: only X applies; X completed makes the container whole.
	s := snapshotOf(all, []*domain.ActivityLog{
		testutil.Completed(x.ID, "2024-01-09"),
	}, nil)
	st := ActivityStatus(s, container, testutil.Day("2024-01-09"))
	assert.Equal(t, Status{Done: 1, Total: 1}, st)

	// Monday 2024-01-08: both apply, only X completed.
	s = snapshotOf(all, []*domain.ActivityLog{
		testutil.Completed(x.ID, "2024-01-08"),
	}, nil)
	st = ActivityStatus(s, container, testutil.Day("2024-01-08"))
	assert.Equal(t, Status{Done: 1, Total: 2}, st)
}

func TestActivityStatus_ContainerZeroApplicableChildrenAutoCompletes(t *testing.T) {
	container := testutil.NewTestActivity("Weekend Routine",
		testutil.WithKind(domain.KindContainer),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	child := testutil.NewTestActivity("Hike",
		testutil.WithSchedule(domain.Weekly(6)),
		testutil.WithParent(container.ID),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)

	s := snapshotOf([]*domain.Activity{container, child}, nil, nil)
	st := ActivityStatus(s, container, testutil.Day("2024-01-08")) // a Monday

	assert.Equal(t, Status{}, st)
	assert.True(t, st.Satisfied(), "auto-completed, not inapplicable")
}

func TestActivityStatus_ContainerExcludesStoppedChildren(t *testing.T) {
	container := testutil.NewTestActivity("Routine",
		testutil.WithKind(domain.KindContainer),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	active := testutil.NewTestActivity("Active",
		testutil.WithParent(container.ID),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	stopped := testutil.NewTestActivity("Stopped",
		testutil.WithParent(container.ID),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
		testutil.WithStoppedAt(testutil.Day("2024-01-05")),
	)

	s := snapshotOf([]*domain.Activity{container, active, stopped}, []*domain.ActivityLog{
		testutil.Completed(active.ID, "2024-01-10"),
	}, nil)
	st := ActivityStatus(s, container, testutil.Day("2024-01-10"))

	assert.Equal(t, Status{Done: 1, Total: 1}, st)
}

func TestActivityStatus_CyclicContainerExcludesBranch(t *testing.T) {
	a := testutil.NewTestActivity("A",
		testutil.WithKind(domain.KindContainer),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	b := testutil.NewTestActivity("B",
		testutil.WithKind(domain.KindContainer),
		testutil.WithParent(a.ID),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	// Close the cycle: A claims B as parent.
	a.ParentID = &b.ID

	s := snapshotOf([]*domain.Activity{a, b}, nil, nil)
	st := ActivityStatus(s, a, testutil.Day("2024-01-10"))

	// Must terminate; the cyclic branch contributes nothing.
	assert.Equal(t, Status{}, st)
}

func TestCompletionForDay_Aggregates(t *testing.T) {
	m := testutil.NewTestActivity("Meditate", testutil.WithCreatedAt(testutil.Day("2024-01-01")))
	g := testutil.NewTestActivity("Gym", testutil.WithCreatedAt(testutil.Day("2024-01-01")))
	all := []*domain.Activity{m, g}

	s := snapshotOf(all, []*domain.ActivityLog{
		testutil.Completed(m.ID, "2024-01-05"),
	}, nil)
	res := CompletionForDay(s, testutil.Day("2024-01-05"), all)

	assert.True(t, res.Applicable)
	assert.False(t, res.AllSkipped)
	assert.InDelta(t, 0.5, res.Rate, 1e-9)
}

func TestCompletionForDay_AllSkippedVsNotApplicable(t *testing.T) {
	m := testutil.NewTestActivity("Meditate",
		testutil.WithSchedule(domain.Weekly(1)),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	all := []*domain.Activity{m}

	// Monday, skipped: rate 0 but explicitly all-skipped.
	s := snapshotOf(all, []*domain.ActivityLog{
		testutil.Skipped(m.ID, "2024-01-08"),
	}, nil)
	res := CompletionForDay(s, testutil.Day("2024-01-08"), all)
	assert.True(t, res.Applicable)
	assert.True(t, res.AllSkipped)
	assert.Equal(t, 0.0, res.Rate)

	// Tuesday, nothing scheduled: the not-applicable sentinel.
	res = CompletionForDay(s, testutil.Day("2024-01-09"), all)
	assert.False(t, res.Applicable)
	assert.False(t, res.AllSkipped)

	// Monday, missed: rate 0 and not all-skipped.
	s = snapshotOf(all, nil, nil)
	res = CompletionForDay(s, testutil.Day("2024-01-08"), all)
	assert.True(t, res.Applicable)
	assert.False(t, res.AllSkipped)
	assert.Equal(t, 0.0, res.Rate)
}

func TestCompletionForDay_VacationNotApplicable(t *testing.T) {
	m := testutil.NewTestActivity("Meditate", testutil.WithCreatedAt(testutil.Day("2024-01-01")))
	all := []*domain.Activity{m}

	s := snapshotOf(all, nil, []*domain.VacationDay{testutil.Vacation("2024-01-05")})
	res := CompletionForDay(s, testutil.Day("2024-01-05"), all)

	assert.False(t, res.Applicable)
}

func TestCompletionForDay_RemindersExcluded(t *testing.T) {
	m := testutil.NewTestActivity("Meditate", testutil.WithCreatedAt(testutil.Day("2024-01-01")))
	sticky := testutil.NewTestActivity("Fix bike",
		testutil.WithSchedule(domain.Sticky()),
		testutil.WithCreatedAt(testutil.Day("2024-01-01")),
	)
	all := []*domain.Activity{m, sticky}

	s := snapshotOf(all, []*domain.ActivityLog{
		testutil.Completed(m.ID, "2024-01-05"),
	}, nil)
	res := CompletionForDay(s, testutil.Day("2024-01-05"), all)

	assert.InDelta(t, 1.0, res.Rate, 1e-9, "sticky reminder must not drag the rate")
}

func TestCompletionForDay_OrphanLogsIgnored(t *testing.T) {
	m := testutil.NewTestActivity("Meditate", testutil.WithCreatedAt(testutil.Day("2024-01-01")))
	all := []*domain.Activity{m}

	s := snapshotOf(all, []*domain.ActivityLog{
		testutil.Completed(m.ID, "2024-01-05"),
		testutil.Completed("deleted-activity", "2024-01-05"),
	}, nil)
	res := CompletionForDay(s, testutil.Day("2024-01-05"), all)

	assert.InDelta(t, 1.0, res.Rate, 1e-9)
}
