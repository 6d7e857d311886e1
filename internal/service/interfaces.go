package service

import (
	"context"
	"time"

	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/engine"
)

type ActivityService interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, includeStopped bool) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Stop(ctx context.Context, id string, at time.Time) error
	Resume(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	AddSlot(ctx context.Context, slot *domain.TimeSlot) error
}

type LogService interface {
	// Complete resolves the activity's effective due occurrence as of the
	// given day; the created log is stamped with the original due date when
	// the occurrence was carried forward.
	Complete(ctx context.Context, activityID string, today time.Time, value *float64, slot *string) (*domain.ActivityLog, error)
	Skip(ctx context.Context, activityID string, today time.Time, reason *string, slot *string) (*domain.ActivityLog, error)
	ListByActivityDay(ctx context.Context, activityID string, day time.Time) ([]*domain.ActivityLog, error)
	Delete(ctx context.Context, logID string) error
}

type VacationService interface {
	Add(ctx context.Context, date time.Time) error
	Remove(ctx context.Context, date time.Time) error
	List(ctx context.Context) ([]*domain.VacationDay, error)
}

// ActivityStats bundles the per-activity numbers the CLI surfaces.
type ActivityStats struct {
	Activity      *domain.Activity
	CurrentStreak int
	LongestStreak int
	Rate7         float64
	Rate30        float64
}

// HeatmapDay is one day cell of the trailing completion heatmap.
type HeatmapDay struct {
	Date       time.Time
	Rate       float64
	AllSkipped bool
	Applicable bool
	Vacation   bool
}

type StatsService interface {
	Today(ctx context.Context, today time.Time) ([]engine.DueItem, error)
	DayCompletion(ctx context.Context, date time.Time) (engine.DayResult, error)
	Stats(ctx context.Context, today time.Time) ([]ActivityStats, error)
	ActivityStreaks(ctx context.Context, activityID string, today time.Time) (current, longest int, err error)
	Heatmap(ctx context.Context, today time.Time, days int) ([]HeatmapDay, error)
}
