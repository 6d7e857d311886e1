package domain

import "time"

// ActivityLog records one resolved occurrence of an activity. Date is the
// logical day the occurrence belongs to: for carry-forwarded items this is
// the original due date, not the day the user acted. CompletedAt keeps the
// wall-clock moment for "most recent" queries.
//
// Non-cumulative kinds hold at most one completed/skipped log per
// (activity, date, slot); cumulative kinds may hold many completed logs per
// (activity, date), combined by the activity's aggregation mode.
type ActivityLog struct {
	ID         string
	ActivityID string
	Date       time.Time
	Status     LogStatus
	Value      *float64
	TimeSlot   *string
	SkipReason *string

	CompletedAt time.Time
	CreatedAt   time.Time
}

// VacationDay marks one calendar day exempt from tracking: every activity
// passes through, and the day never feeds a carry-forward scan.
type VacationDay struct {
	ID        string
	Date      time.Time
	CreatedAt time.Time
}
