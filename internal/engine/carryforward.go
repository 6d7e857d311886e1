package engine

import (
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// EffectiveDueDate resolves which day an activity is actually due for as of
// today. For a carry-forward recurring activity this is the oldest scheduled
// day since creation that is not a vacation day and has no completed or
// skipped log; only that single occurrence surfaces, newer missed ones stay
// latent until it is resolved. With nothing carried, the answer is today
// itself when the activity is scheduled (and unresolved) today.
//
// Resolving a carried item stamps the log with the returned date, which is
// what removes the occurrence from future scans.
func EffectiveDueDate(s *Snapshot, a *domain.Activity, today time.Time) (time.Time, bool) {
	today = domain.DayStart(today)

	if a.CarryForward && a.Schedule.Kind.IsRecurring() {
		for d := domain.DayStart(a.CreatedAt); d.Before(today); d = d.AddDate(0, 0, 1) {
			if !IsScheduled(a, d) {
				continue
			}
			if s.IsVacation(d) {
				continue
			}
			if s.HasResolution(a.ID, d) {
				continue
			}
			return d, true
		}
	}

	if IsScheduled(a, today) && !fullyResolved(s, a, today) {
		return today, true
	}
	return time.Time{}, false
}

// fullyResolved reports whether nothing remains to do for the activity on
// the given day: every remaining session completed, the cumulative target
// met, or the whole day explicitly skipped. Past occurrences in the
// carry-forward scan use the looser any-log rule; this stricter check keeps
// partially logged days (one slot of two, 500ml of 2000) on today's list.
func fullyResolved(s *Snapshot, a *domain.Activity, date time.Time) bool {
	st := ActivityStatus(s, a, date)
	if st.Total == 0 {
		return s.HasResolution(a.ID, date)
	}
	return st.Satisfied()
}
