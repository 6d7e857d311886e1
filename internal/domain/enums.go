package domain

type ActivityKind string

const (
	KindCheckbox   ActivityKind = "checkbox"
	KindValue      ActivityKind = "value"
	KindCumulative ActivityKind = "cumulative"
	KindContainer  ActivityKind = "container"
	KindMetric     ActivityKind = "metric"
)

// ValidActivityKinds is the canonical set of accepted activity kind strings.
var ValidActivityKinds = map[string]bool{
	"checkbox": true, "value": true, "cumulative": true,
	"container": true, "metric": true,
}

type ScheduleKind string

const (
	ScheduleDaily   ScheduleKind = "daily"
	ScheduleWeekly  ScheduleKind = "weekly"
	ScheduleMonthly ScheduleKind = "monthly"
	ScheduleSticky  ScheduleKind = "sticky"
	ScheduleAdhoc   ScheduleKind = "adhoc"
)

// ValidScheduleKinds is the canonical set of accepted schedule kind strings.
var ValidScheduleKinds = map[string]bool{
	"daily": true, "weekly": true, "monthly": true,
	"sticky": true, "adhoc": true,
}

// IsRecurring reports whether the schedule kind repeats on the calendar.
// Sticky and adhoc activities are reminders and never recur.
func (k ScheduleKind) IsRecurring() bool {
	switch k {
	case ScheduleDaily, ScheduleWeekly, ScheduleMonthly:
		return true
	default:
		return false
	}
}

type LogStatus string

const (
	StatusCompleted LogStatus = "completed"
	StatusSkipped   LogStatus = "skipped"
)

type AggregationMode string

const (
	AggregateSum     AggregationMode = "sum"
	AggregateAverage AggregationMode = "average"
)
