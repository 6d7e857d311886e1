package engine

import (
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// dayClass is the per-day streak classification.
type dayClass int

const (
	dayPassThrough dayClass = iota
	daySatisfied
	dayMissed
)

// classifyDay applies the streak rules for one activity on one day, in
// priority order: not scheduled, vacation, and explicit skips pass through;
// a satisfied day extends the run; anything else breaks it.
func classifyDay(s *Snapshot, a *domain.Activity, date time.Time) dayClass {
	if !IsScheduled(a, date) {
		return dayPassThrough
	}
	if s.IsVacation(date) {
		return dayPassThrough
	}

	st := ActivityStatus(s, a, date)
	if st.Total == 0 && st.Skipped > 0 {
		return dayPassThrough
	}

	if a.IsContainer() {
		if containerStrictlyDone(s, a, date, map[string]bool{}) {
			return daySatisfied
		}
		return dayMissed
	}

	if st.Total > 0 && st.Satisfied() {
		return daySatisfied
	}
	if st.Total == 0 {
		// Auto-completed (no obligation) extends nothing and breaks nothing.
		return dayPassThrough
	}
	return dayMissed
}

// containerStrictlyDone is the container streak predicate: every applicable
// child must have a completed log that day, with no partial credit. Nested
// containers recurse; cycles are excluded.
func containerStrictlyDone(s *Snapshot, container *domain.Activity, date time.Time, visited map[string]bool) bool {
	if visited[container.ID] {
		return true
	}
	visited[container.ID] = true

	for _, child := range ApplicableChildren(s, container, date) {
		if child.IsContainer() {
			if !containerStrictlyDone(s, child, date, visited) {
				return false
			}
			continue
		}
		if !s.HasCompletion(child.ID, date) {
			return false
		}
	}
	return true
}

// CurrentStreak counts the unbroken run of satisfied days ending at today.
// Today itself passes through when not yet satisfied: it has not failed
// until the day is over. Reminders have no streaks.
func CurrentStreak(s *Snapshot, a *domain.Activity, today time.Time) int {
	if a.IsReminder() {
		return 0
	}

	today = domain.DayStart(today)
	created := domain.DayStart(a.CreatedAt)

	streak := 0
	d := today
	if classifyDay(s, a, d) != daySatisfied {
		d = d.AddDate(0, 0, -1)
	}
	for !d.Before(created) {
		switch classifyDay(s, a, d) {
		case daySatisfied:
			streak++
		case dayMissed:
			return streak
		}
		d = d.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak scans the full history from creation to today and returns
// the longest run the streak rules ever produced. Pass-through days neither
// extend nor reset the running counter.
func LongestStreak(s *Snapshot, a *domain.Activity, today time.Time) int {
	if a.IsReminder() {
		return 0
	}

	today = domain.DayStart(today)
	created := domain.DayStart(a.CreatedAt)

	longest, run := 0, 0
	for d := created; !d.After(today); d = d.AddDate(0, 0, 1) {
		switch classifyDay(s, a, d) {
		case daySatisfied:
			run++
			if run > longest {
				longest = run
			}
		case dayMissed:
			// Today not yet resolved is not a miss.
			if domain.SameDay(d, today) {
				continue
			}
			run = 0
		}
	}
	return longest
}
