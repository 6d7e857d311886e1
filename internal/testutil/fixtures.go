package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkellner/cadence/internal/domain"
)

// Activity options
type ActivityOption func(*domain.Activity)

func WithKind(k domain.ActivityKind) ActivityOption {
	return func(a *domain.Activity) {
		a.Kind = k
	}
}

func WithSchedule(s domain.Schedule) ActivityOption {
	return func(a *domain.Activity) {
		a.Schedule = s
	}
}

func WithTarget(v float64, mode domain.AggregationMode) ActivityOption {
	return func(a *domain.Activity) {
		a.TargetValue = &v
		a.Aggregation = mode
	}
}

func WithCarryForward() ActivityOption {
	return func(a *domain.Activity) {
		a.CarryForward = true
	}
}

func WithParent(parentID string) ActivityOption {
	return func(a *domain.Activity) {
		a.ParentID = &parentID
	}
}

func WithCreatedAt(t time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.CreatedAt = t
	}
}

func WithStoppedAt(t time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.StoppedAt = &t
	}
}

// NewTestActivity builds a daily checkbox activity created a year ago,
// customizable via options.
func NewTestActivity(name string, opts ...ActivityOption) *domain.Activity {
	now := time.Now()
	a := &domain.Activity{
		ID:        uuid.New().String(),
		Name:      name,
		Kind:      domain.KindCheckbox,
		Schedule:  domain.Daily(),
		CreatedAt: domain.DayStart(now.AddDate(-1, 0, 0)),
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Log options
type LogOption func(*domain.ActivityLog)

func WithValue(v float64) LogOption {
	return func(l *domain.ActivityLog) {
		l.Value = &v
	}
}

func WithSlot(label string) LogOption {
	return func(l *domain.ActivityLog) {
		l.TimeSlot = &label
	}
}

func WithSkipReason(reason string) LogOption {
	return func(l *domain.ActivityLog) {
		l.SkipReason = &reason
	}
}

func WithCompletedAt(t time.Time) LogOption {
	return func(l *domain.ActivityLog) {
		l.CompletedAt = t
	}
}

// NewTestLog builds a log for the given activity and YYYY-MM-DD day.
// The day string must be valid; fixtures panic rather than return errors.
func NewTestLog(activityID, day string, status domain.LogStatus, opts ...LogOption) *domain.ActivityLog {
	date, err := domain.ParseDay(day)
	if err != nil {
		panic("testutil: bad day " + day)
	}
	l := &domain.ActivityLog{
		ID:          uuid.New().String(),
		ActivityID:  activityID,
		Date:        date,
		Status:      status,
		CompletedAt: date.Add(20 * time.Hour),
		CreatedAt:   date.Add(20 * time.Hour),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Completed builds a completed log for the given day.
func Completed(activityID, day string, opts ...LogOption) *domain.ActivityLog {
	return NewTestLog(activityID, day, domain.StatusCompleted, opts...)
}

// Skipped builds a skipped log for the given day.
func Skipped(activityID, day string, opts ...LogOption) *domain.ActivityLog {
	return NewTestLog(activityID, day, domain.StatusSkipped, opts...)
}

// Vacation builds a vacation day for the given YYYY-MM-DD day.
func Vacation(day string) *domain.VacationDay {
	date, err := domain.ParseDay(day)
	if err != nil {
		panic("testutil: bad day " + day)
	}
	return &domain.VacationDay{
		ID:        uuid.New().String(),
		Date:      date,
		CreatedAt: date,
	}
}

// NewTestSlot builds a time slot for an activity. Empty weekdays means the
// slot applies every day.
func NewTestSlot(activityID, label string, weekdays ...int) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:         uuid.New().String(),
		ActivityID: activityID,
		Label:      label,
		Weekdays:   weekdays,
	}
}

// Day parses a YYYY-MM-DD string, panicking on bad input.
func Day(day string) time.Time {
	date, err := domain.ParseDay(day)
	if err != nil {
		panic("testutil: bad day " + day)
	}
	return date
}
