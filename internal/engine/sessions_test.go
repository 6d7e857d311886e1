package engine

import (
	"testing"

	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSessionsPerDay(t *testing.T) {
	a := testutil.NewTestActivity("Medication")
	slots := []*domain.TimeSlot{
		testutil.NewTestSlot(a.ID, "morning"),
		testutil.NewTestSlot(a.ID, "noon", 1, 2, 3, 4, 5),
		testutil.NewTestSlot(a.ID, "evening"),
	}
	s := NewSnapshot([]*domain.Activity{a}, nil, nil, slots)

	mon := testutil.Day("2024-01-08")
	sat := testutil.Day("2024-01-13")
	assert.Equal(t, 3, SessionsPerDay(s, a, mon))
	assert.Equal(t, 2, SessionsPerDay(s, a, sat), "noon slot rests on weekends")

	// No slots configured still means one session.
	bare := testutil.NewTestActivity("Meditate")
	s = NewSnapshot([]*domain.Activity{bare}, nil, nil, nil)
	assert.Equal(t, 1, SessionsPerDay(s, bare, mon))
}
