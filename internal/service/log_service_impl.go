package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/engine"
	"github.com/mkellner/cadence/internal/repository"
)

type logService struct {
	activities repository.ActivityRepo
	logs       repository.LogRepo
	vacations  repository.VacationRepo
	slots      repository.TimeSlotRepo
}

func NewLogService(activities repository.ActivityRepo, logs repository.LogRepo, vacations repository.VacationRepo, slots repository.TimeSlotRepo) LogService {
	return &logService{activities: activities, logs: logs, vacations: vacations, slots: slots}
}

func (s *logService) Complete(ctx context.Context, activityID string, today time.Time, value *float64, slot *string) (*domain.ActivityLog, error) {
	return s.resolve(ctx, activityID, today, domain.StatusCompleted, value, slot, nil)
}

func (s *logService) Skip(ctx context.Context, activityID string, today time.Time, reason *string, slot *string) (*domain.ActivityLog, error) {
	return s.resolve(ctx, activityID, today, domain.StatusSkipped, nil, slot, reason)
}

// resolve stamps the log with the activity's effective due date, so a
// carried occurrence lands on its original day and vanishes from future
// carry-forward scans.
func (s *logService) resolve(ctx context.Context, activityID string, today time.Time, status domain.LogStatus, value *float64, slot, reason *string) (*domain.ActivityLog, error) {
	a, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if a.IsContainer() {
		return nil, fmt.Errorf("container %q has no logs of its own", a.Name)
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	today = domain.DayStart(today)
	dueDate := today
	if d, ok := engine.EffectiveDueDate(snap, a, today); ok {
		dueDate = d
	}

	// Non-cumulative kinds hold one resolution per (day, slot).
	if a.Kind != domain.KindCumulative {
		for _, existing := range snap.Logs(a.ID, dueDate) {
			if sameSlot(existing.TimeSlot, slot) {
				return nil, fmt.Errorf("%s already resolved for %s", a.Name, domain.DayKey(dueDate))
			}
		}
	}

	now := time.Now()
	l := &domain.ActivityLog{
		ID:          uuid.New().String(),
		ActivityID:  a.ID,
		Date:        dueDate,
		Status:      status,
		Value:       value,
		TimeSlot:    slot,
		SkipReason:  reason,
		CompletedAt: now,
		CreatedAt:   now,
	}
	if err := s.logs.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func sameSlot(a, b *string) bool {
	av, bv := "", ""
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

func (s *logService) ListByActivityDay(ctx context.Context, activityID string, day time.Time) ([]*domain.ActivityLog, error) {
	logs, err := s.logs.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	day = domain.DayStart(day)
	var matched []*domain.ActivityLog
	for _, l := range logs {
		if domain.SameDay(l.Date, day) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (s *logService) Delete(ctx context.Context, logID string) error {
	return s.logs.Delete(ctx, logID)
}

func (s *logService) loadSnapshot(ctx context.Context) (*engine.Snapshot, error) {
	return loadSnapshot(ctx, s.activities, s.logs, s.vacations, s.slots)
}

// loadSnapshot reads the full tracker state and indexes it for the engine.
func loadSnapshot(ctx context.Context, activities repository.ActivityRepo, logs repository.LogRepo, vacations repository.VacationRepo, slots repository.TimeSlotRepo) (*engine.Snapshot, error) {
	acts, err := activities.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	allLogs, err := logs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading logs: %w", err)
	}
	vacs, err := vacations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading vacation days: %w", err)
	}
	allSlots, err := slots.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading time slots: %w", err)
	}
	return engine.NewSnapshot(acts, allLogs, vacs, allSlots), nil
}
