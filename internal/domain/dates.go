package domain

import "time"

// DateLayout is the storage and display format for calendar days.
const DateLayout = "2006-01-02"

// DayStart normalizes a timestamp to local midnight of its calendar day.
// All logical-day comparisons in the engine go through this.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey returns the YYYY-MM-DD key for a timestamp's calendar day.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ISOWeekday maps time.Weekday to ISO numbering: Monday=1 .. Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ParseDay parses a YYYY-MM-DD string as local midnight.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
