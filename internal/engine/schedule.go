package engine

import (
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// IsScheduled reports whether the activity's recurrence rule fires on the
// given calendar day. Lifetime bounds (created/stopped) are enforced here;
// vacation days and existing logs are not — those belong to the callers.
//
// Sticky activities always return false: their presence is open-ended and
// computed by the due-list resolver, not by the calendar.
func IsScheduled(a *domain.Activity, date time.Time) bool {
	if !a.ActiveOn(date) {
		return false
	}
	switch a.Schedule.Kind {
	case domain.ScheduleDaily:
		return true
	case domain.ScheduleWeekly:
		wd := domain.ISOWeekday(date)
		for _, w := range a.Schedule.Weekdays {
			if w == wd {
				return true
			}
		}
		return false
	case domain.ScheduleMonthly:
		dom := date.Day()
		for _, d := range a.Schedule.MonthDays {
			if d == dom {
				return true
			}
		}
		return false
	case domain.ScheduleSticky:
		return false
	case domain.ScheduleAdhoc:
		return a.Schedule.Date != nil && domain.SameDay(*a.Schedule.Date, date)
	default:
		return false
	}
}
