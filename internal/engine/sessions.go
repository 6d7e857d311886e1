package engine

import (
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// ActiveSlots returns the activity's time slots that apply on the given day.
func ActiveSlots(s *Snapshot, a *domain.Activity, date time.Time) []*domain.TimeSlot {
	var active []*domain.TimeSlot
	for _, slot := range s.SlotsFor(a.ID) {
		if slot.ActiveOn(date) {
			active = append(active, slot)
		}
	}
	return active
}

// SessionsPerDay is the number of independent occurrences of an activity
// within one day: one per active time slot, minimum one.
func SessionsPerDay(s *Snapshot, a *domain.Activity, date time.Time) int {
	if n := len(ActiveSlots(s, a, date)); n > 1 {
		return n
	}
	return 1
}

// sessionTally counts resolved sessions for one activity on one day.
// Cumulative kinds log many completions per day, but each slot still counts
// once toward the session totals.
type sessionTally struct {
	completed int
	skipped   int
}

func tallySessions(s *Snapshot, a *domain.Activity, date time.Time) sessionTally {
	var t sessionTally
	seenCompleted := map[string]bool{}
	seenSkipped := map[string]bool{}
	for _, l := range s.Logs(a.ID, date) {
		slot := ""
		if l.TimeSlot != nil {
			slot = *l.TimeSlot
		}
		switch l.Status {
		case domain.StatusCompleted:
			if !seenCompleted[slot] {
				seenCompleted[slot] = true
				t.completed++
			}
		case domain.StatusSkipped:
			if !seenSkipped[slot] {
				seenSkipped[slot] = true
				t.skipped++
			}
		}
	}
	return t
}
