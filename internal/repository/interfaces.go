package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, includeStopped bool) ([]*domain.Activity, error)
	ListChildren(ctx context.Context, parentID string) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Stop(ctx context.Context, id string, at time.Time) error
	Resume(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type LogRepo interface {
	Create(ctx context.Context, l *domain.ActivityLog) error
	GetByID(ctx context.Context, id string) (*domain.ActivityLog, error)
	ListAll(ctx context.Context) ([]*domain.ActivityLog, error)
	ListByActivity(ctx context.Context, activityID string) ([]*domain.ActivityLog, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.ActivityLog, error)
	ListSince(ctx context.Context, date time.Time) ([]*domain.ActivityLog, error)
	Delete(ctx context.Context, id string) error
}

type VacationRepo interface {
	Add(ctx context.Context, v *domain.VacationDay) error
	Remove(ctx context.Context, date time.Time) error
	List(ctx context.Context) ([]*domain.VacationDay, error)
}

type TimeSlotRepo interface {
	Create(ctx context.Context, s *domain.TimeSlot) error
	ListByActivity(ctx context.Context, activityID string) ([]*domain.TimeSlot, error)
	ListAll(ctx context.Context) ([]*domain.TimeSlot, error)
	Delete(ctx context.Context, id string) error
}
