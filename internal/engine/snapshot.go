// Package engine answers the scheduling, completion, and streak questions
// for a set of activities: is this due today, how complete is it, how long
// has the run of compliance lasted. Every function is pure over an immutable
// Snapshot; nothing here touches storage or mutates its inputs.
package engine

import (
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

type activityDateKey struct {
	activityID string
	day        string
}

// Snapshot is a read-only, pre-indexed view of the tracker's data. Callers
// build one per query batch (e.g. one per render) so that per-day and
// per-(activity, day) log lookups are map hits rather than linear scans.
type Snapshot struct {
	activities map[string]*domain.Activity
	ordered    []*domain.Activity
	children   map[string][]*domain.Activity

	logsByDate         map[string][]*domain.ActivityLog
	logsByActivityDate map[activityDateKey][]*domain.ActivityLog
	logsByActivity     map[string][]*domain.ActivityLog

	vacations map[string]bool
	slots     map[string][]*domain.TimeSlot
}

// NewSnapshot indexes the given collections. Logs referencing an unknown
// activity are orphans and are dropped here, so no aggregate ever sees them.
// The input slices are not retained or modified.
func NewSnapshot(activities []*domain.Activity, logs []*domain.ActivityLog, vacations []*domain.VacationDay, slots []*domain.TimeSlot) *Snapshot {
	s := &Snapshot{
		activities:         make(map[string]*domain.Activity, len(activities)),
		ordered:            make([]*domain.Activity, 0, len(activities)),
		children:           make(map[string][]*domain.Activity),
		logsByDate:         make(map[string][]*domain.ActivityLog),
		logsByActivityDate: make(map[activityDateKey][]*domain.ActivityLog),
		logsByActivity:     make(map[string][]*domain.ActivityLog),
		vacations:          make(map[string]bool, len(vacations)),
		slots:              make(map[string][]*domain.TimeSlot),
	}

	for _, a := range activities {
		s.activities[a.ID] = a
		s.ordered = append(s.ordered, a)
	}
	for _, a := range activities {
		if a.ParentID != nil {
			if _, ok := s.activities[*a.ParentID]; ok {
				s.children[*a.ParentID] = append(s.children[*a.ParentID], a)
			}
		}
	}

	for _, l := range logs {
		if _, ok := s.activities[l.ActivityID]; !ok {
			continue
		}
		day := domain.DayKey(l.Date)
		s.logsByDate[day] = append(s.logsByDate[day], l)
		key := activityDateKey{activityID: l.ActivityID, day: day}
		s.logsByActivityDate[key] = append(s.logsByActivityDate[key], l)
		s.logsByActivity[l.ActivityID] = append(s.logsByActivity[l.ActivityID], l)
	}

	for _, v := range vacations {
		s.vacations[domain.DayKey(v.Date)] = true
	}
	for _, sl := range slots {
		s.slots[sl.ActivityID] = append(s.slots[sl.ActivityID], sl)
	}

	return s
}

// Activity returns the activity with the given ID, or nil.
func (s *Snapshot) Activity(id string) *domain.Activity {
	return s.activities[id]
}

// Activities returns all activities in their input order.
func (s *Snapshot) Activities() []*domain.Activity {
	return s.ordered
}

// Children returns the direct children of a container, in input order.
func (s *Snapshot) Children(parentID string) []*domain.Activity {
	return s.children[parentID]
}

// IsVacation reports whether the given day is marked as a vacation.
func (s *Snapshot) IsVacation(date time.Time) bool {
	return s.vacations[domain.DayKey(date)]
}

// Logs returns all logs for one activity on one calendar day.
func (s *Snapshot) Logs(activityID string, date time.Time) []*domain.ActivityLog {
	return s.logsByActivityDate[activityDateKey{activityID: activityID, day: domain.DayKey(date)}]
}

// LogsOn returns all logs for one calendar day across activities.
func (s *Snapshot) LogsOn(date time.Time) []*domain.ActivityLog {
	return s.logsByDate[domain.DayKey(date)]
}

// ActivityLogs returns every log for one activity across all days.
func (s *Snapshot) ActivityLogs(activityID string) []*domain.ActivityLog {
	return s.logsByActivity[activityID]
}

// HasResolution reports whether the activity has any completed or skipped
// log on the given day, in any slot.
func (s *Snapshot) HasResolution(activityID string, date time.Time) bool {
	return len(s.Logs(activityID, date)) > 0
}

// HasCompletion reports whether the activity has at least one completed log
// on the given day.
func (s *Snapshot) HasCompletion(activityID string, date time.Time) bool {
	for _, l := range s.Logs(activityID, date) {
		if l.Status == domain.StatusCompleted {
			return true
		}
	}
	return false
}

// EverCompleted reports whether the activity has any completed log at all.
// Sticky reminders retire after their first completion.
func (s *Snapshot) EverCompleted(activityID string) bool {
	for _, l := range s.logsByActivity[activityID] {
		if l.Status == domain.StatusCompleted {
			return true
		}
	}
	return false
}

// SlotsFor returns the configured time slots for an activity.
func (s *Snapshot) SlotsFor(activityID string) []*domain.TimeSlot {
	return s.slots[activityID]
}
