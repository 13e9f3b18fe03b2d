package app

import (
	"context"

	"github.com/bookmyfield/backend/config"
	"github.com/bookmyfield/backend/internal/domains/bookings/service"
	"github.com/bookmyfield/backend/pkg/logger"
	"github.com/bookmyfield/backend/pkg/postgres"
	"github.com/robfig/cron/v3"
)

func Cron(db postgres.PgxIface, cfg *config.Config, l logger.Interface) {
	schedulerService := service.NewSchedulerService(db, cfg)

	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(cfg.Schedule.BookingsCompletion, func() {
		ctx := context.WithoutCancel(context.Background())

		updated, err := schedulerService.CompletePastBookings(ctx)
		if err != nil {
			l.Error("Cron job - CompletePastBookings failed: %v", err)

			return
		}

		if updated > 0 {
			l.Info("Cron job - CompletePastBookings marked %d bookings", updated)
		}
	})

	if err != nil {
		l.Error("Cron job - AddFunc failed: %v", err)

		return
	}

	c.Start()
}
