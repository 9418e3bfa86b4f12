package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clash-arena/internal/model"
	"clash-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type CouponServiceImpl struct {
	couponRepo  repository.CouponRepository
	paymentRepo repository.PaymentRepository
	dbManager   repository.DBManager
	logger      zerolog.Logger
}

var _ CouponService = (*CouponServiceImpl)(nil)

func NewCouponService(
	couponRepo repository.CouponRepository,
	paymentRepo repository.PaymentRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) CouponService {
	return &CouponServiceImpl{
		couponRepo:  couponRepo,
		paymentRepo: paymentRepo,
		dbManager:   dbManager,
		logger:      logger,
	}
}

// Validate is the read-only preview used before checkout. Redemption re-runs
// every rule inside the registration transaction, so a positive preview is
// never a reservation.
func (s *CouponServiceImpl) Validate(ctx context.Context, userID int64, req *model.CouponValidateRequest) (*model.CouponValidateResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}

	coupon, discount, err := s.check(ctx, nil, req.Code, userID, req.TournamentID, amount)
	if err != nil {
		if errors.Is(err, model.ErrCouponNotApplicable) || errors.Is(err, model.ErrCouponNotFound) {
			return &model.CouponValidateResponse{Valid: false, Reason: reasonOf(err)}, nil
		}
		return nil, err
	}

	s.logger.Debug().
		Str("code", coupon.Code).
		Int64("user_id", userID).
		Str("discount", discount.StringFixed(0)).
		Msg("coupon validated")

	return &model.CouponValidateResponse{
		Valid:       true,
		Discount:    discount.StringFixed(0),
		FinalAmount: amount.Sub(discount).StringFixed(0),
	}, nil
}

func (s *CouponServiceImpl) Check(ctx context.Context, tx pgx.Tx, code string, userID, tournamentID int64, amount decimal.Decimal) (*model.Coupon, decimal.Decimal, error) {
	return s.check(ctx, tx, code, userID, tournamentID, amount)
}

func (s *CouponServiceImpl) check(ctx context.Context, tx pgx.Tx, code string, userID, tournamentID int64, amount decimal.Decimal) (*model.Coupon, decimal.Decimal, error) {
	var txs []pgx.Tx
	if tx != nil {
		txs = append(txs, tx)
	}

	coupon, err := s.couponRepo.GetByCode(ctx, code, txs...)
	if err != nil {
		if errors.Is(err, model.ErrCouponNotFound) {
			return nil, decimal.Zero, err
		}
		return nil, decimal.Zero, fmt.Errorf("get coupon: %w", err)
	}

	now := time.Now()
	switch {
	case coupon.Status != model.CouponActive:
		return nil, decimal.Zero, notApplicable("coupon is not active")
	case now.Before(coupon.ValidFrom):
		return nil, decimal.Zero, notApplicable("coupon is not yet valid")
	case now.After(coupon.ValidUntil):
		return nil, decimal.Zero, notApplicable("coupon has expired")
	case coupon.MaxUses > 0 && coupon.CurrentUses >= coupon.MaxUses:
		return nil, decimal.Zero, notApplicable("coupon usage limit reached")
	case amount.LessThan(coupon.MinPurchase):
		return nil, decimal.Zero, notApplicable(fmt.Sprintf("minimum purchase is %s", coupon.MinPurchase.StringFixed(0)))
	}

	if len(coupon.TournamentIDs) > 0 && !containsID(coupon.TournamentIDs, tournamentID) {
		return nil, decimal.Zero, notApplicable("coupon is not valid for this tournament")
	}
	if len(coupon.AllowedUserIDs) > 0 && !containsID(coupon.AllowedUserIDs, userID) {
		return nil, decimal.Zero, notApplicable("coupon is not available to this user")
	}

	if coupon.MaxUsesPerUser > 0 {
		used, err := s.couponRepo.CountUsagesByUser(ctx, coupon.ID, userID, txs...)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("count coupon usages: %w", err)
		}
		if used >= coupon.MaxUsesPerUser {
			return nil, decimal.Zero, notApplicable("coupon already used the maximum number of times")
		}
	}

	if coupon.FirstPurchaseOnly {
		purchased, err := s.paymentRepo.HasCompletedEntryPayment(ctx, userID, txs...)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("check first purchase: %w", err)
		}
		if purchased {
			return nil, decimal.Zero, notApplicable("coupon is for first purchases only")
		}
	}

	return coupon, coupon.CalculateDiscount(amount), nil
}

// Redeem bumps the usage counter and writes the usage row. The guarded update
// absorbs concurrent redemptions racing for the last global use; the unique
// payment key absorbs a double submit of the same registration.
func (s *CouponServiceImpl) Redeem(ctx context.Context, tx pgx.Tx, couponID, userID, paymentID int64, discount decimal.Decimal) error {
	bumped, err := s.couponRepo.IncrementUses(ctx, couponID, tx)
	if err != nil {
		return fmt.Errorf("increment coupon uses: %w", err)
	}
	if !bumped {
		return notApplicable("coupon usage limit reached")
	}

	usage := &model.CouponUsage{
		CouponID:       couponID,
		UserID:         userID,
		PaymentID:      paymentID,
		DiscountAmount: discount,
	}
	if err := s.couponRepo.InsertUsage(ctx, usage, tx); err != nil {
		return fmt.Errorf("insert coupon usage: %w", err)
	}

	s.logger.Info().
		Int64("coupon_id", couponID).
		Int64("user_id", userID).
		Int64("payment_id", paymentID).
		Str("discount", discount.StringFixed(0)).
		Msg("coupon redeemed")
	return nil
}

func notApplicable(reason string) error {
	return fmt.Errorf("%w: %s", model.ErrCouponNotApplicable, reason)
}

// reasonOf strips the sentinel prefix for user-facing validation responses.
func reasonOf(err error) string {
	if errors.Is(err, model.ErrCouponNotFound) {
		return "coupon not found"
	}
	msg := err.Error()
	prefix := model.ErrCouponNotApplicable.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
