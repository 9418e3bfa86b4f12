package service

import (
	"context"
	"fmt"
	"time"

	"clash-arena/internal/repository"

	"github.com/rs/zerolog"
)

type MaintenanceServiceImpl struct {
	paymentRepo    repository.PaymentRepository
	couponRepo     repository.CouponRepository
	invitationRepo repository.InvitationRepository
	logger         zerolog.Logger
}

var _ MaintenanceService = (*MaintenanceServiceImpl)(nil)

func NewMaintenanceService(
	paymentRepo repository.PaymentRepository,
	couponRepo repository.CouponRepository,
	invitationRepo repository.InvitationRepository,
	logger zerolog.Logger,
) MaintenanceService {
	return &MaintenanceServiceImpl{
		paymentRepo:    paymentRepo,
		couponRepo:     couponRepo,
		invitationRepo: invitationRepo,
		logger:         logger,
	}
}

func (s *MaintenanceServiceImpl) ExpirePayments(ctx context.Context) (int64, error) {
	expired, err := s.paymentRepo.ExpirePending(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("expire payments: %w", err)
	}
	if expired > 0 {
		s.logger.Info().Int64("expired", expired).Msg("pending payments expired")
	}
	return expired, nil
}

func (s *MaintenanceServiceImpl) ExpireCoupons(ctx context.Context) (int64, error) {
	expired, err := s.couponRepo.ExpireOld(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("expire coupons: %w", err)
	}
	if expired > 0 {
		s.logger.Info().Int64("expired", expired).Msg("coupons expired")
	}
	return expired, nil
}

func (s *MaintenanceServiceImpl) ExpireInvitations(ctx context.Context) (int64, error) {
	expired, err := s.invitationRepo.ExpireOld(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("expire invitations: %w", err)
	}
	if expired > 0 {
		s.logger.Info().Int64("expired", expired).Msg("invitations expired")
	}
	return expired, nil
}
