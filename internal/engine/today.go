package engine

import (
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// DueItem is one entry in the day's due list. DueDate is the logical day
// the occurrence belongs to; for carried items it is the original missed
// date. A log resolving this item must be stamped with DueDate.
type DueItem struct {
	Activity *domain.Activity
	DueDate  time.Time
	Carried  bool
	Sessions int
}

// ActivitiesForToday resolves the ordered due list for one day, applying
// carry-forward for recurring activities and open-ended presence for
// reminders. Child activities surface through their container; a container
// is listed when any of its applicable children is unresolved. Vacation
// days are fully exempt and produce an empty list.
func ActivitiesForToday(s *Snapshot, today time.Time) []DueItem {
	today = domain.DayStart(today)
	if s.IsVacation(today) {
		return nil
	}

	var due []DueItem
	for _, a := range s.Activities() {
		if a.ParentID != nil {
			continue
		}
		if item, ok := dueToday(s, a, today); ok {
			due = append(due, item)
		}
	}
	return due
}

func dueToday(s *Snapshot, a *domain.Activity, today time.Time) (DueItem, bool) {
	if !a.ActiveOn(today) {
		return DueItem{}, false
	}

	if a.IsContainer() {
		if !IsScheduled(a, today) {
			return DueItem{}, false
		}
		for _, child := range ApplicableChildren(s, a, today) {
			if !ActivityStatus(s, child, today).Satisfied() {
				return DueItem{Activity: a, DueDate: today}, true
			}
		}
		return DueItem{}, false
	}

	switch a.Schedule.Kind {
	case domain.ScheduleSticky:
		// Due every day until completed once; a skip hides it for the day.
		if s.EverCompleted(a.ID) || s.HasResolution(a.ID, today) {
			return DueItem{}, false
		}
		return DueItem{Activity: a, DueDate: today, Sessions: 1}, true
	case domain.ScheduleAdhoc:
		if a.Schedule.Date == nil || s.HasResolution(a.ID, *a.Schedule.Date) {
			return DueItem{}, false
		}
		if !domain.SameDay(*a.Schedule.Date, today) {
			return DueItem{}, false
		}
		return DueItem{Activity: a, DueDate: today, Sessions: 1}, true
	}

	d, ok := EffectiveDueDate(s, a, today)
	if !ok {
		return DueItem{}, false
	}
	return DueItem{
		Activity: a,
		DueDate:  d,
		Carried:  !domain.SameDay(d, today),
		Sessions: SessionsPerDay(s, a, d),
	}, true
}
