package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
	slots      repository.TimeSlotRepo
}

func NewActivityService(activities repository.ActivityRepo, slots repository.TimeSlotRepo) ActivityService {
	return &activityService{activities: activities, slots: slots}
}

func (s *activityService) Create(ctx context.Context, a *domain.Activity) error {
	if err := validateActivity(a); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = domain.DayStart(now)
	}
	a.UpdatedAt = now
	if a.Aggregation == "" {
		a.Aggregation = domain.AggregateSum
	}

	if a.ParentID != nil {
		parent, err := s.activities.GetByID(ctx, *a.ParentID)
		if err != nil {
			return fmt.Errorf("looking up parent: %w", err)
		}
		if !parent.IsContainer() {
			return fmt.Errorf("parent %q is not a container", parent.Name)
		}
	}

	return s.activities.Create(ctx, a)
}

func validateActivity(a *domain.Activity) error {
	if a.Name == "" {
		return fmt.Errorf("activity name is required")
	}
	if !domain.ValidActivityKinds[string(a.Kind)] {
		return fmt.Errorf("invalid activity kind %q", a.Kind)
	}
	if !domain.ValidScheduleKinds[string(a.Schedule.Kind)] {
		return fmt.Errorf("invalid schedule kind %q", a.Schedule.Kind)
	}
	for _, wd := range a.Schedule.Weekdays {
		if wd < 1 || wd > 7 {
			return fmt.Errorf("weekday %d out of range 1..7", wd)
		}
	}
	for _, md := range a.Schedule.MonthDays {
		if md < 1 || md > 31 {
			return fmt.Errorf("month day %d out of range 1..31", md)
		}
	}
	if a.Schedule.Kind == domain.ScheduleAdhoc && a.Schedule.Date == nil {
		return fmt.Errorf("adhoc schedule requires a date")
	}
	if a.Kind == domain.KindContainer && a.CarryForward {
		return fmt.Errorf("containers cannot carry forward")
	}
	return nil
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *activityService) List(ctx context.Context, includeStopped bool) ([]*domain.Activity, error) {
	return s.activities.List(ctx, includeStopped)
}

func (s *activityService) Update(ctx context.Context, a *domain.Activity) error {
	if err := validateActivity(a); err != nil {
		return err
	}
	a.UpdatedAt = time.Now()
	return s.activities.Update(ctx, a)
}

func (s *activityService) Stop(ctx context.Context, id string, at time.Time) error {
	return s.activities.Stop(ctx, id, domain.DayStart(at))
}

func (s *activityService) Resume(ctx context.Context, id string) error {
	return s.activities.Resume(ctx, id)
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}

func (s *activityService) AddSlot(ctx context.Context, slot *domain.TimeSlot) error {
	if slot.Label == "" {
		return fmt.Errorf("slot label is required")
	}
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if _, err := s.activities.GetByID(ctx, slot.ActivityID); err != nil {
		return fmt.Errorf("looking up activity: %w", err)
	}
	return s.slots.Create(ctx, slot)
}
