package service

import (
	"context"
	"time"

	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/engine"
	"github.com/mkellner/cadence/internal/repository"
)

type statsService struct {
	activities repository.ActivityRepo
	logs       repository.LogRepo
	vacations  repository.VacationRepo
	slots      repository.TimeSlotRepo
}

func NewStatsService(activities repository.ActivityRepo, logs repository.LogRepo, vacations repository.VacationRepo, slots repository.TimeSlotRepo) StatsService {
	return &statsService{activities: activities, logs: logs, vacations: vacations, slots: slots}
}

func (s *statsService) Today(ctx context.Context, today time.Time) ([]engine.DueItem, error) {
	snap, err := loadSnapshot(ctx, s.activities, s.logs, s.vacations, s.slots)
	if err != nil {
		return nil, err
	}
	return engine.ActivitiesForToday(snap, today), nil
}

func (s *statsService) DayCompletion(ctx context.Context, date time.Time) (engine.DayResult, error) {
	snap, err := loadSnapshot(ctx, s.activities, s.logs, s.vacations, s.slots)
	if err != nil {
		return engine.DayResult{}, err
	}
	return engine.CompletionForDay(snap, date, rootActivities(snap)), nil
}

func (s *statsService) Stats(ctx context.Context, today time.Time) ([]ActivityStats, error) {
	snap, err := loadSnapshot(ctx, s.activities, s.logs, s.vacations, s.slots)
	if err != nil {
		return nil, err
	}

	var out []ActivityStats
	for _, a := range snap.Activities() {
		if a.IsReminder() || !a.ActiveOn(today) {
			continue
		}
		out = append(out, ActivityStats{
			Activity:      a,
			CurrentStreak: engine.CurrentStreak(snap, a, today),
			LongestStreak: engine.LongestStreak(snap, a, today),
			Rate7:         engine.CompletionRate(snap, a, today, 7),
			Rate30:        engine.CompletionRate(snap, a, today, 30),
		})
	}
	return out, nil
}

func (s *statsService) ActivityStreaks(ctx context.Context, activityID string, today time.Time) (int, int, error) {
	snap, err := loadSnapshot(ctx, s.activities, s.logs, s.vacations, s.slots)
	if err != nil {
		return 0, 0, err
	}
	a := snap.Activity(activityID)
	if a == nil {
		return 0, 0, repository.ErrNotFound
	}
	return engine.CurrentStreak(snap, a, today), engine.LongestStreak(snap, a, today), nil
}

func (s *statsService) Heatmap(ctx context.Context, today time.Time, days int) ([]HeatmapDay, error) {
	snap, err := loadSnapshot(ctx, s.activities, s.logs, s.vacations, s.slots)
	if err != nil {
		return nil, err
	}

	roots := rootActivities(snap)
	today = domain.DayStart(today)
	start := today.AddDate(0, 0, -(days - 1))

	out := make([]HeatmapDay, 0, days)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		res := engine.CompletionForDay(snap, d, roots)
		out = append(out, HeatmapDay{
			Date:       d,
			Rate:       res.Rate,
			AllSkipped: res.AllSkipped,
			Applicable: res.Applicable,
			Vacation:   snap.IsVacation(d),
		})
	}
	return out, nil
}

// rootActivities filters to activities without a parent; children aggregate
// through their container.
func rootActivities(snap *engine.Snapshot) []*domain.Activity {
	var roots []*domain.Activity
	for _, a := range snap.Activities() {
		if a.ParentID == nil {
			roots = append(roots, a)
		}
	}
	return roots
}
