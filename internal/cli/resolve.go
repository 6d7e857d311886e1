package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// resolveActivity resolves user input to an activity, matching by exact
// name (case-insensitive), exact ID, then ID prefix.
func resolveActivity(ctx context.Context, app *App, input string) (*domain.Activity, error) {
	if input == "" {
		return nil, fmt.Errorf("activity name or ID is required")
	}

	activities, err := app.Activities.List(ctx, true)
	if err != nil {
		return nil, err
	}

	for _, a := range activities {
		if strings.EqualFold(a.Name, input) {
			return a, nil
		}
	}

	for _, a := range activities {
		if a.ID == input {
			return a, nil
		}
	}

	var matches []*domain.Activity
	for _, a := range activities {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("activity not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("activity %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseDayFlag parses an optional --date value, defaulting to today.
func parseDayFlag(value string) (time.Time, error) {
	if value == "" {
		return domain.DayStart(time.Now()), nil
	}
	d, err := domain.ParseDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", value)
	}
	return d, nil
}
