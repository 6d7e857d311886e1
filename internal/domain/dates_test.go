package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISOWeekday(t *testing.T) {
	// 2024-02-05 is a Monday, 2024-02-11 a Sunday.
	mon := time.Date(2024, 2, 5, 12, 0, 0, 0, time.Local)
	sun := time.Date(2024, 2, 11, 12, 0, 0, 0, time.Local)

	assert.Equal(t, 1, ISOWeekday(mon))
	assert.Equal(t, 7, ISOWeekday(sun))
}

func TestDayStart(t *testing.T) {
	late := time.Date(2024, 3, 15, 23, 59, 59, 0, time.Local)
	start := DayStart(late)

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.True(t, SameDay(late, start))
}

func TestParseDayRoundTrip(t *testing.T) {
	d, err := ParseDay("2024-02-05")
	assert.NoError(t, err)
	assert.Equal(t, "2024-02-05", DayKey(d))

	_, err = ParseDay("02/05/2024")
	assert.Error(t, err)
}

func TestActivityActiveOn(t *testing.T) {
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	stopped := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)
	a := &Activity{CreatedAt: created, StoppedAt: &stopped}

	assert.False(t, a.ActiveOn(created.AddDate(0, 0, -1)), "before creation")
	assert.True(t, a.ActiveOn(created))
	assert.True(t, a.ActiveOn(stopped.AddDate(0, 0, -1)))
	assert.False(t, a.ActiveOn(stopped), "stop day itself is inactive")
	assert.False(t, a.ActiveOn(stopped.AddDate(0, 0, 5)))
}

func TestTimeSlotActiveOn(t *testing.T) {
	everyday := &TimeSlot{Label: "morning"}
	weekdaysOnly := &TimeSlot{Label: "office", Weekdays: []int{1, 2, 3, 4, 5}}

	mon := time.Date(2024, 2, 5, 0, 0, 0, 0, time.Local)
	sat := time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local)

	assert.True(t, everyday.ActiveOn(mon))
	assert.True(t, everyday.ActiveOn(sat))
	assert.True(t, weekdaysOnly.ActiveOn(mon))
	assert.False(t, weekdaysOnly.ActiveOn(sat))
}
