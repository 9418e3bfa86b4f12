package worker

import (
	"context"
	"sync"
	"time"

	"clash-arena/internal/service"

	"github.com/rs/zerolog"
)

// VerificationWorker polls payments stuck in gateway verification.
type VerificationWorker struct {
	service  service.VerificationService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewVerificationWorker(svc service.VerificationService, interval time.Duration, logger zerolog.Logger) *VerificationWorker {
	return &VerificationWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *VerificationWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Verification worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running verification poll")
				err := w.service.ProcessPendingVerifications(ctx)
				if err != nil {
					w.logger.Error().Err(err).Msg("Failed to run verification poll")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Verification worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Verification worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *VerificationWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
