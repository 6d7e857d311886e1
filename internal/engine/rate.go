package engine

import (
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// CompletionRate averages the per-day completion fraction of one activity
// over the trailing windowDays calendar days ending at today. Vacation days
// are excluded from the divisor, as are days where the activity was not
// scheduled or was fully skipped; a window with no countable days yields 0.
// Reminders have no completion rate.
func CompletionRate(s *Snapshot, a *domain.Activity, today time.Time, windowDays int) float64 {
	if windowDays <= 0 || a.IsReminder() {
		return 0
	}

	today = domain.DayStart(today)
	start := today.AddDate(0, 0, -(windowDays - 1))

	var sum float64
	var counted int
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		if s.IsVacation(d) {
			continue
		}
		if !IsScheduled(a, d) {
			continue
		}
		st := ActivityStatus(s, a, d)
		if st.Total == 0 {
			// Fully skipped or auto-completed: nothing to measure.
			continue
		}
		sum += st.Done / st.Total
		counted++
	}

	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}
