package engine

import (
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// Status is the completion triple for one activity on one day. Done and
// Total are fractional session counts (cumulative activities contribute a
// single fractional unit); Skipped counts activities whose every session was
// explicitly skipped, which removes them from the denominator entirely while
// still being detectable for "all skipped" days.
type Status struct {
	Done    float64
	Total   float64
	Skipped int
}

// Satisfied reports whether the day's obligation is fully met. A fully
// skipped or auto-completed activity (Total == 0) counts as satisfied.
func (st Status) Satisfied() bool {
	return st.Done >= st.Total
}

// DayResult is the day-level completion aggregate across a set of
// activities. Applicable is false when nothing was scheduled that day (the
// "not applicable" sentinel); AllSkipped marks a day where everything
// scheduled was explicitly skipped, which renders differently from a missed
// day even though the rate is zero.
type DayResult struct {
	Rate       float64
	AllSkipped bool
	Applicable bool
}

// ApplicableChildren returns the container's children whose own schedule
// fires on the given day, excluding stopped children. Reminders never fire
// a calendar schedule and are therefore never applicable inside a container.
func ApplicableChildren(s *Snapshot, container *domain.Activity, date time.Time) []*domain.Activity {
	var out []*domain.Activity
	for _, child := range s.Children(container.ID) {
		if IsScheduled(child, date) {
			out = append(out, child)
		}
	}
	return out
}

// ActivityStatus computes the completion triple for one activity on one
// day. Containers derive their status from children recursively; a cyclic
// container reference is excluded rather than recursed into.
func ActivityStatus(s *Snapshot, a *domain.Activity, date time.Time) Status {
	return activityStatus(s, a, date, map[string]bool{})
}

func activityStatus(s *Snapshot, a *domain.Activity, date time.Time, visited map[string]bool) Status {
	if visited[a.ID] {
		return Status{}
	}
	visited[a.ID] = true

	if a.IsContainer() {
		var st Status
		for _, child := range ApplicableChildren(s, a, date) {
			cs := activityStatus(s, child, date, visited)
			st.Done += cs.Done
			st.Total += cs.Total
			st.Skipped += cs.Skipped
		}
		// Zero applicable children: auto-completed, not inapplicable.
		return st
	}

	sessions := SessionsPerDay(s, a, date)
	tally := tallySessions(s, a, date)

	if a.Kind == domain.KindCumulative {
		return cumulativeStatus(s, a, date, sessions, tally)
	}

	if tally.completed == 0 && tally.skipped >= sessions {
		return Status{Skipped: 1}
	}

	effective := sessions - tally.skipped
	if effective < 0 {
		effective = 0
	}
	done := tally.completed
	if done > effective {
		done = effective
	}
	return Status{Done: float64(done), Total: float64(effective)}
}

// cumulativeStatus grants fractional credit against the target value.
// Without a positive target there is nothing to measure: the activity only
// participates in skip detection.
func cumulativeStatus(s *Snapshot, a *domain.Activity, date time.Time, sessions int, tally sessionTally) Status {
	if a.TargetValue == nil || *a.TargetValue <= 0 {
		if tally.completed == 0 && tally.skipped >= sessions {
			return Status{Skipped: 1}
		}
		return Status{}
	}
	if tally.completed == 0 && tally.skipped >= sessions {
		return Status{Skipped: 1}
	}

	var sum float64
	var count int
	for _, l := range s.Logs(a.ID, date) {
		if l.Status != domain.StatusCompleted || l.Value == nil {
			continue
		}
		sum += *l.Value
		count++
	}

	var aggregate float64
	switch {
	case count == 0:
		aggregate = 0
	case a.Aggregation == domain.AggregateAverage:
		aggregate = sum / float64(count)
	default:
		aggregate = sum
	}

	done := aggregate / *a.TargetValue
	if done > 1.0 {
		done = 1.0
	}
	return Status{Done: done, Total: 1}
}

// CompletionForDay aggregates completion across the given activities for one
// day. Vacation days and reminders are pass-throughs and never contribute.
// Callers pass root activities only; children are reached through their
// container and would double-count if listed directly.
func CompletionForDay(s *Snapshot, date time.Time, activities []*domain.Activity) DayResult {
	if s.IsVacation(date) {
		return DayResult{}
	}

	var st Status
	for _, a := range activities {
		if a.IsReminder() {
			continue
		}
		if !IsScheduled(a, date) {
			continue
		}
		as := ActivityStatus(s, a, date)
		st.Done += as.Done
		st.Total += as.Total
		st.Skipped += as.Skipped
	}

	switch {
	case st.Total == 0 && st.Skipped > 0:
		return DayResult{Rate: 0, AllSkipped: true, Applicable: true}
	case st.Total == 0:
		return DayResult{}
	default:
		return DayResult{Rate: st.Done / st.Total, Applicable: true}
	}
}
