package service

import (
	"context"
	"testing"
	"time"

	"clash-arena/internal/model"
	mocks "clash-arena/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type couponServiceMocks struct {
	couponRepo  *mocks.CouponRepository
	paymentRepo *mocks.PaymentRepository
	dbManager   *mocks.DBManager
}

func newCouponServiceForTest(t *testing.T) (CouponService, *couponServiceMocks) {
	m := &couponServiceMocks{
		couponRepo:  mocks.NewCouponRepository(t),
		paymentRepo: mocks.NewPaymentRepository(t),
		dbManager:   mocks.NewDBManager(t),
	}
	return NewCouponService(m.couponRepo, m.paymentRepo, m.dbManager, zerolog.Nop()), m
}

func activeCoupon() *model.Coupon {
	return &model.Coupon{
		ID:            10,
		Code:          "WELCOME",
		DiscountType:  model.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(20),
		Status:        model.CouponActive,
		ValidFrom:     time.Now().Add(-time.Hour),
		ValidUntil:    time.Now().Add(time.Hour),
	}
}

func TestCouponValidate_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, m := newCouponServiceForTest(t)

	m.couponRepo.On("GetByCode", ctx, "NOPE").Return(nil, model.ErrCouponNotFound)

	resp, err := svc.Validate(ctx, 1, &model.CouponValidateRequest{
		Code: "NOPE", TournamentID: 5, Amount: "100000",
	})

	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, "coupon not found", resp.Reason)
}

func TestCouponValidate_Expired(t *testing.T) {
	ctx := context.Background()
	svc, m := newCouponServiceForTest(t)

	coupon := activeCoupon()
	coupon.ValidUntil = time.Now().Add(-time.Minute)
	m.couponRepo.On("GetByCode", ctx, "WELCOME").Return(coupon, nil)

	resp, err := svc.Validate(ctx, 1, &model.CouponValidateRequest{
		Code: "WELCOME", TournamentID: 5, Amount: "100000",
	})

	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, "coupon has expired", resp.Reason)
}

func TestCouponValidate_PercentageWithCap(t *testing.T) {
	ctx := context.Background()
	svc, m := newCouponServiceForTest(t)

	coupon := activeCoupon()
	coupon.MaxDiscount = decimal.NewFromInt(15000)
	m.couponRepo.On("GetByCode", ctx, "WELCOME").Return(coupon, nil)

	resp, err := svc.Validate(ctx, 1, &model.CouponValidateRequest{
		Code: "WELCOME", TournamentID: 5, Amount: "100000",
	})

	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, "15000", resp.Discount)
	assert.Equal(t, "85000", resp.FinalAmount)
}

func TestCouponValidate_BelowMinPurchase(t *testing.T) {
	ctx := context.Background()
	svc, m := newCouponServiceForTest(t)

	coupon := activeCoupon()
	coupon.MinPurchase = decimal.NewFromInt(50000)
	m.couponRepo.On("GetByCode", ctx, "WELCOME").Return(coupon, nil)

	resp, err := svc.Validate(ctx, 1, &model.CouponValidateRequest{
		Code: "WELCOME", TournamentID: 5, Amount: "20000",
	})

	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, "minimum purchase is 50000", resp.Reason)
}

func TestCouponValidate_BadAmount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCouponServiceForTest(t)

	resp, err := svc.Validate(ctx, 1, &model.CouponValidateRequest{
		Code: "WELCOME", TournamentID: 5, Amount: "not-a-number",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestCouponCheck_PerUserLimitReached(t *testing.T) {
	ctx := context.Background()
	svc, m := newCouponServiceForTest(t)

	coupon := activeCoupon()
	coupon.MaxUsesPerUser = 2
	m.couponRepo.On("GetByCode", ctx, "WELCOME").Return(coupon, nil)
	m.couponRepo.On("CountUsagesByUser", ctx, int64(10), int64(1)).Return(2, nil)

	c, discount, err := svc.Check(ctx, nil, "WELCOME", 1, 5, decimal.NewFromInt(100000))

	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, discount.IsZero())
	assert.ErrorIs(t, err, model.ErrCouponNotApplicable)
}

func TestCouponCheck_FirstPurchaseOnly(t *testing.T) {
	ctx := context.Background()
	svc, m := newCouponServiceForTest(t)

	coupon := activeCoupon()
	coupon.FirstPurchaseOnly = true
	m.couponRepo.On("GetByCode", ctx, "WELCOME").Return(coupon, nil)
	m.paymentRepo.On("HasCompletedEntryPayment", ctx, int64(1)).Return(true, nil)

	_, _, err := svc.Check(ctx, nil, "WELCOME", 1, 5, decimal.NewFromInt(100000))

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCouponNotApplicable)
}

func TestCouponCheck_WrongTournament(t *testing.T) {
	ctx := context.Background()
	svc, m := newCouponServiceForTest(t)

	coupon := activeCoupon()
	coupon.TournamentIDs = []int64{8, 9}
	m.couponRepo.On("GetByCode", ctx, "WELCOME").Return(coupon, nil)

	_, _, err := svc.Check(ctx, nil, "WELCOME", 1, 5, decimal.NewFromInt(100000))

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCouponNotApplicable)
}

func TestCouponRedeem_HappyPath(t *testing.T) {
	ctx := context.Background()
	svc, m := newCouponServiceForTest(t)

	m.couponRepo.On("IncrementUses", ctx, int64(10), mock.Anything).Return(true, nil)
	m.couponRepo.On("InsertUsage", ctx, mock.MatchedBy(func(u *model.CouponUsage) bool {
		return u.CouponID == 10 && u.UserID == 1 && u.PaymentID == 55 &&
			u.DiscountAmount.Equal(decimal.NewFromInt(15000))
	}), mock.Anything).Return(nil)

	err := svc.Redeem(ctx, nil, 10, 1, 55, decimal.NewFromInt(15000))

	require.NoError(t, err)
}

func TestCouponRedeem_GlobalLimitRace(t *testing.T) {
	ctx := context.Background()
	svc, m := newCouponServiceForTest(t)

	m.couponRepo.On("IncrementUses", ctx, int64(10), mock.Anything).Return(false, nil)

	err := svc.Redeem(ctx, nil, 10, 1, 55, decimal.NewFromInt(15000))

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCouponNotApplicable)
	m.couponRepo.AssertNotCalled(t, "InsertUsage", mock.Anything, mock.Anything, mock.Anything)
}
