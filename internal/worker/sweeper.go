package worker

import (
	"context"
	"fmt"
	"time"

	"clash-arena/internal/service"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// Sweeper schedules the periodic expiry sweeps. Every sweep is a filtered
// update, so overlapping or repeated runs are harmless.
type Sweeper struct {
	service   service.MaintenanceService
	interval  time.Duration
	logger    zerolog.Logger
	scheduler gocron.Scheduler
}

func NewSweeper(svc service.MaintenanceService, interval time.Duration, logger zerolog.Logger) (*Sweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Sweeper{
		service:   svc,
		interval:  interval,
		logger:    logger,
		scheduler: scheduler,
	}, nil
}

func (s *Sweeper) Start(ctx context.Context) error {
	jobs := []struct {
		name string
		run  func(context.Context) (int64, error)
	}{
		{"expire_payments", s.service.ExpirePayments},
		{"expire_coupons", s.service.ExpireCoupons},
		{"expire_invitations", s.service.ExpireInvitations},
	}

	for _, job := range jobs {
		name, run := job.name, job.run
		_, err := s.scheduler.NewJob(
			gocron.DurationJob(s.interval),
			gocron.NewTask(func() {
				if _, err := run(ctx); err != nil {
					s.logger.Error().Err(err).Str("sweep", name).Msg("Sweep failed")
				}
			}),
			gocron.WithName(name),
		)
		if err != nil {
			return fmt.Errorf("schedule %s: %w", name, err)
		}
	}

	s.scheduler.Start()
	s.logger.Info().Dur("interval", s.interval).Msg("Sweeper started")
	return nil
}

func (s *Sweeper) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		s.logger.Error().Err(err).Msg("Sweeper shutdown failed")
	}
}
