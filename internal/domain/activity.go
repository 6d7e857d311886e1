package domain

import "time"

// Schedule describes when an activity is due. Exactly one rule applies,
// selected by Kind: Weekdays for weekly, MonthDays for monthly, Date for
// adhoc. Daily and sticky carry no parameters.
type Schedule struct {
	Kind      ScheduleKind
	Weekdays  []int // ISO weekdays, Monday=1..Sunday=7
	MonthDays []int // 1..31
	Date      *time.Time
}

// Daily returns an every-day schedule.
func Daily() Schedule {
	return Schedule{Kind: ScheduleDaily}
}

// Weekly returns a schedule firing on the given ISO weekdays.
func Weekly(weekdays ...int) Schedule {
	return Schedule{Kind: ScheduleWeekly, Weekdays: weekdays}
}

// Monthly returns a schedule firing on the given days of the month.
func Monthly(monthDays ...int) Schedule {
	return Schedule{Kind: ScheduleMonthly, MonthDays: monthDays}
}

// Sticky returns an open-ended backlog schedule: due every day until the
// activity is completed once.
func Sticky() Schedule {
	return Schedule{Kind: ScheduleSticky}
}

// Adhoc returns a schedule due on exactly one day.
func Adhoc(date time.Time) Schedule {
	d := DayStart(date)
	return Schedule{Kind: ScheduleAdhoc, Date: &d}
}

type Activity struct {
	ID       string
	Name     string
	Kind     ActivityKind
	Schedule Schedule

	// Cumulative target
	TargetValue *float64
	Aggregation AggregationMode

	CarryForward bool

	// Hierarchy: containers own children; ParentID is a lookup-only
	// back-reference.
	ParentID *string

	CreatedAt time.Time
	StoppedAt *time.Time
	UpdatedAt time.Time
}

// IsContainer reports whether the activity derives completion from children.
func (a *Activity) IsContainer() bool {
	return a.Kind == KindContainer
}

// IsReminder reports whether the activity is a sticky or adhoc reminder,
// excluded from completion-rate and streak computations.
func (a *Activity) IsReminder() bool {
	return !a.Schedule.Kind.IsRecurring()
}

// ActiveOn reports whether date falls inside the activity's lifetime:
// on or after creation and strictly before StoppedAt.
func (a *Activity) ActiveOn(date time.Time) bool {
	d := DayStart(date)
	if d.Before(DayStart(a.CreatedAt)) {
		return false
	}
	if a.StoppedAt != nil && !d.Before(DayStart(*a.StoppedAt)) {
		return false
	}
	return true
}

// TimeSlot is one configured time-of-day window for an activity, e.g.
// "morning" active Mon-Fri. An empty Weekdays list means every day.
type TimeSlot struct {
	ID         string
	ActivityID string
	Label      string
	Weekdays   []int
}

// ActiveOn reports whether the slot applies on the given date.
func (s *TimeSlot) ActiveOn(date time.Time) bool {
	if len(s.Weekdays) == 0 {
		return true
	}
	wd := ISOWeekday(date)
	for _, w := range s.Weekdays {
		if w == wd {
			return true
		}
	}
	return false
}
