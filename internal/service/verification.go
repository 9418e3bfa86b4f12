package service

import (
	"context"
	"fmt"

	"clash-arena/internal/gateway"
	"clash-arena/internal/model"
	"clash-arena/internal/repository"

	"github.com/rs/zerolog"
)

// verifyBatchSize bounds one verification poll.
const verifyBatchSize = 20

type VerificationServiceImpl struct {
	paymentRepo repository.PaymentRepository
	payments    PaymentService
	provider    gateway.Provider
	logger      zerolog.Logger
}

var _ VerificationService = (*VerificationServiceImpl)(nil)

func NewVerificationService(
	paymentRepo repository.PaymentRepository,
	payments PaymentService,
	provider gateway.Provider,
	logger zerolog.Logger,
) VerificationService {
	return &VerificationServiceImpl{
		paymentRepo: paymentRepo,
		payments:    payments,
		provider:    provider,
		logger:      logger,
	}
}

func (s *VerificationServiceImpl) ProcessPendingVerifications(ctx context.Context) error {
	payments, err := s.paymentRepo.ListVerifying(ctx, model.MaxVerifyAttempts, verifyBatchSize)
	if err != nil {
		return fmt.Errorf("list verifying payments: %w", err)
	}
	if len(payments) == 0 {
		return nil
	}

	for _, p := range payments {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.verifyOne(ctx, p); err != nil {
			s.logger.Error().Err(err).
				Str("transaction_id", p.TransactionID).
				Msg("failed to verify payment")
		}
	}
	return nil
}

func (s *VerificationServiceImpl) verifyOne(ctx context.Context, p *model.Payment) error {
	if p.GatewayTransactionID == nil {
		_, err := s.payments.MarkFailed(ctx, p.ID, "no gateway reference to verify")
		return err
	}

	if err := s.paymentRepo.IncrementVerifyAttempts(ctx, p.ID); err != nil {
		return fmt.Errorf("increment verify attempts: %w", err)
	}

	result, err := s.provider.Verify(ctx, *p.GatewayTransactionID)
	if err != nil {
		// The attempt cap converts a permanently unreachable gateway into a
		// failed payment instead of an endless poll.
		if p.VerifyAttempts+1 >= model.MaxVerifyAttempts {
			s.logger.Warn().
				Str("transaction_id", p.TransactionID).
				Int("attempts", p.VerifyAttempts+1).
				Msg("verification attempts exhausted")
			_, failErr := s.payments.MarkFailed(ctx, p.ID, "gateway verification attempts exhausted")
			return failErr
		}
		return fmt.Errorf("verify with gateway: %w", err)
	}

	if !result.Success {
		_, err := s.payments.MarkFailed(ctx, p.ID, result.Reason)
		return err
	}
	_, err = s.payments.MarkCompleted(ctx, p.ID, result.TrackingCode, result.CardInfo)
	return err
}
