package service

import (
	"context"

	"github.com/bookmyfield/backend/config"
	"github.com/bookmyfield/backend/internal/domains/bookings/repository"
	"github.com/bookmyfield/backend/pkg/postgres"
)

type SchedulerService struct {
	db   postgres.PgxIface
	repo *repository.Queries
	cfg  *config.Config
}

func NewSchedulerService(db postgres.PgxIface, cfg *config.Config) *SchedulerService {
	return &SchedulerService{
		db:   db,
		repo: repository.New(),
		cfg:  cfg,
	}
}

// CompletePastBookings marks Confirmed bookings whose date has passed as
// Completed. Returns the number of rows updated.
func (s *SchedulerService) CompletePastBookings(ctx context.Context) (int64, error) {
	return s.repo.CompletePastBookings(ctx, s.db)
}
