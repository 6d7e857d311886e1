package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/repository"
)

type vacationService struct {
	vacations repository.VacationRepo
}

func NewVacationService(vacations repository.VacationRepo) VacationService {
	return &vacationService{vacations: vacations}
}

func (s *vacationService) Add(ctx context.Context, date time.Time) error {
	return s.vacations.Add(ctx, &domain.VacationDay{
		ID:        uuid.New().String(),
		Date:      domain.DayStart(date),
		CreatedAt: time.Now(),
	})
}

func (s *vacationService) Remove(ctx context.Context, date time.Time) error {
	return s.vacations.Remove(ctx, domain.DayStart(date))
}

func (s *vacationService) List(ctx context.Context) ([]*domain.VacationDay, error) {
	return s.vacations.List(ctx)
}
