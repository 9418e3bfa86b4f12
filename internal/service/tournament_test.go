package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clash-arena/internal/config"
	"clash-arena/internal/gateway"
	"clash-arena/internal/model"
	"clash-arena/internal/notify"
	mocks "clash-arena/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tournamentServiceMocks struct {
	tournamentRepo  *mocks.TournamentRepository
	participantRepo *mocks.ParticipantRepository
	invitationRepo  *mocks.InvitationRepository
	paymentRepo     *mocks.PaymentRepository
	couponRepo      *mocks.CouponRepository
	userRepo        *mocks.UserRepository
	transRepo       *mocks.TransactionRepository
	dbManager       *mocks.DBManager
}

// newTournamentServiceForTest wires real ledger, coupon and payment services
// over repository mocks, so registrations run the same settlement path they
// run in production.
func newTournamentServiceForTest(t *testing.T) (TournamentService, *tournamentServiceMocks) {
	logger := zerolog.Nop()
	m := &tournamentServiceMocks{
		tournamentRepo:  mocks.NewTournamentRepository(t),
		participantRepo: mocks.NewParticipantRepository(t),
		invitationRepo:  mocks.NewInvitationRepository(t),
		paymentRepo:     mocks.NewPaymentRepository(t),
		couponRepo:      mocks.NewCouponRepository(t),
		userRepo:        mocks.NewUserRepository(t),
		transRepo:       mocks.NewTransactionRepository(t),
		dbManager:       mocks.NewDBManager(t),
	}

	sink := notify.NewLogSink(logger)
	ledger := NewLedgerService(m.userRepo, m.transRepo, logger)
	coupons := NewCouponService(m.couponRepo, m.paymentRepo, m.dbManager, logger)
	payments := NewPaymentService(
		m.paymentRepo, m.participantRepo, m.tournamentRepo,
		ledger, m.dbManager, gateway.NewSandbox(config.SandboxConfig{}), sink,
		config.PaymentConfig{Expiry: model.PaymentExpiry},
		"https://example.invalid/callback", logger,
	)
	svc := NewTournamentService(
		m.tournamentRepo, m.participantRepo, m.invitationRepo, m.paymentRepo,
		payments, coupons, ledger, m.dbManager, sink, logger,
	)
	return svc, m
}

func validCreateRequest() *model.CreateTournamentRequest {
	now := time.Now()
	return &model.CreateTournamentRequest{
		Title:             "Friday Clash",
		Pricing:           "premium",
		MaxParticipants:   16,
		EntryFee:          "10000",
		RegistrationStart: now,
		RegistrationEnd:   now.Add(24 * time.Hour),
		StartDate:         now.Add(25 * time.Hour),
	}
}

func registrationTournament() *model.Tournament {
	now := time.Now()
	return &model.Tournament{
		ID:                 5,
		Title:              "Friday Clash",
		Status:             model.TournamentRegistration,
		Pricing:            model.PricingPremium,
		MaxParticipants:    16,
		EntryFee:           decimal.NewFromInt(10000),
		PlatformCommission: decimal.NewFromInt(10),
		BestOf:             3,
		RegistrationStart:  now.Add(-time.Hour),
		RegistrationEnd:    now.Add(time.Hour),
	}
}

func TestTournamentCreate_Defaults(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	m.tournamentRepo.On("Insert", ctx, mock.MatchedBy(func(tr *model.Tournament) bool {
		return tr.Status == model.TournamentDraft &&
			tr.PlatformCommission.Equal(decimal.NewFromInt(10)) &&
			tr.BestOf == 3 &&
			tr.PrizePool.IsZero()
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Tournament).ID = 5
	}).Return(nil)

	tournament, err := svc.Create(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(5), tournament.ID)
	assert.Equal(t, model.TournamentDraft, tournament.Status)
}

func TestTournamentCreate_ValidationFailures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTournamentServiceForTest(t)

	tests := []struct {
		name   string
		mutate func(*model.CreateTournamentRequest)
	}{
		{"unknown pricing", func(r *model.CreateTournamentRequest) { r.Pricing = "vip" }},
		{"free with fee", func(r *model.CreateTournamentRequest) { r.Pricing = "free" }},
		{"premium without fee", func(r *model.CreateTournamentRequest) { r.EntryFee = "0" }},
		{"negative fee", func(r *model.CreateTournamentRequest) { r.EntryFee = "-100" }},
		{"commission over 100", func(r *model.CreateTournamentRequest) { r.PlatformCommission = "150" }},
		{"empty registration window", func(r *model.CreateTournamentRequest) {
			r.RegistrationEnd = r.RegistrationStart
		}},
		{"starts before registration closes", func(r *model.CreateTournamentRequest) {
			r.StartDate = r.RegistrationStart
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)
			tournament, err := svc.Create(ctx, req)
			require.Error(t, err)
			assert.Nil(t, tournament)
		})
	}
}

func TestTournamentPublish_WrongState(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetByID", ctx, int64(5), mock.Anything).Return(registrationTournament(), nil)
	m.tournamentRepo.On("UpdateStatus", ctx, int64(5), model.TournamentDraft, model.TournamentPending, mock.Anything).Return(false, nil)

	err := svc.Publish(ctx, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestTournamentRegister_Free(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	tournament := registrationTournament()
	tournament.Pricing = model.PricingFree
	tournament.EntryFee = decimal.Zero

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(tournament, nil)
	m.participantRepo.On("CountConfirmed", ctx, int64(5), mock.Anything).Return(3, nil)
	m.participantRepo.On("Insert", ctx, mock.MatchedBy(func(p *model.Participant) bool {
		return p.TournamentID == 5 && p.UserID == 1 &&
			p.Status == model.ParticipantConfirmed && p.PaymentID == nil
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Participant).ID = 31
	}).Return(nil)
	m.tournamentRepo.On("UpdatePrizePool", ctx, int64(5), mock.MatchedBy(func(pool decimal.Decimal) bool {
		return pool.IsZero()
	}), 3, mock.Anything).Return(nil)

	resp, err := svc.Register(ctx, 5, 1, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(31), resp.ParticipantID)
	assert.Nil(t, resp.Payment)
	m.userRepo.AssertNotCalled(t, "GetUserForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

// pendingEntryPayment is what the settlement phase reads back under its row
// lock after Register inserted the entry payment.
func pendingEntryPayment(id, amount int64) *model.Payment {
	tournamentID := int64(5)
	return &model.Payment{
		ID:            id,
		TransactionID: fmt.Sprintf("tx-%d", id),
		UserID:        1,
		Type:          model.PaymentTournamentEntry,
		Amount:        decimal.NewFromInt(amount),
		FinalAmount:   decimal.NewFromInt(amount),
		Status:        model.PaymentPending,
		Gateway:       model.GatewayWallet,
		TournamentID:  &tournamentID,
	}
}

func TestTournamentRegister_Premium_PendingUntilSettled(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(registrationTournament(), nil)
	m.participantRepo.On("CountConfirmed", ctx, int64(5), mock.Anything).Return(3, nil).Once()

	// Registration inserts both rows pending; neither is confirmed until the
	// payment completes.
	m.paymentRepo.On("Insert", ctx, mock.MatchedBy(func(p *model.Payment) bool {
		return p.Type == model.PaymentTournamentEntry &&
			p.Status == model.PaymentPending &&
			p.Gateway == model.GatewayWallet &&
			p.Amount.Equal(decimal.NewFromInt(10000)) &&
			p.ExpiresAt != nil
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Payment).ID = 55
	}).Return(nil)
	m.participantRepo.On("Insert", ctx, mock.MatchedBy(func(p *model.Participant) bool {
		return p.Status == model.ParticipantPending &&
			p.PaymentID != nil && *p.PaymentID == 55
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Participant).ID = 32
	}).Return(nil)

	// Settlement: the wallet debit, the payment flip and the participant
	// confirmation all happen inside the completion transaction.
	m.paymentRepo.On("GetForUpdate", ctx, int64(55), mock.Anything).Return(pendingEntryPayment(55, 10000), nil)
	m.userRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{
		ID:            1,
		WalletBalance: decimal.NewFromInt(100000),
	}, nil)
	m.userRepo.On("UpdateBalance", ctx, int64(1), mock.MatchedBy(func(b decimal.Decimal) bool {
		return b.Equal(decimal.NewFromInt(90000))
	}), mock.Anything).Return(nil)
	m.transRepo.On("Insert", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TransactionDebit &&
			trans.PaymentID != nil && *trans.PaymentID == 55 &&
			trans.TournamentID != nil && *trans.TournamentID == 5
	}), mock.Anything).Return(nil)
	m.paymentRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Payment) bool {
		return p.ID == 55 && p.Status == model.PaymentCompleted
	}), mock.Anything).Return(nil)
	m.participantRepo.On("GetByPayment", ctx, int64(55), mock.Anything).Return(&model.Participant{
		ID:           32,
		TournamentID: 5,
		UserID:       1,
		Status:       model.ParticipantPending,
	}, nil)
	m.participantRepo.On("UpdateStatus", ctx, int64(32), model.ParticipantPending, model.ParticipantConfirmed, "", mock.Anything).Return(true, nil)
	m.participantRepo.On("CountConfirmed", ctx, int64(5), mock.Anything).Return(4, nil).Once()
	m.tournamentRepo.On("UpdatePrizePool", ctx, int64(5), mock.MatchedBy(func(pool decimal.Decimal) bool {
		return pool.Equal(decimal.NewFromInt(40000))
	}), 4, mock.Anything).Return(nil)

	resp, err := svc.Register(ctx, 5, 1, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(32), resp.ParticipantID)
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, "10000", resp.Payment.Amount)
	assert.Equal(t, "completed", resp.Payment.Status)
}

func TestTournamentRegister_Premium_InsufficientFunds_Unwinds(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(registrationTournament(), nil)
	m.participantRepo.On("CountConfirmed", ctx, int64(5), mock.Anything).Return(3, nil).Once()
	m.paymentRepo.On("Insert", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Payment).ID = 55
	}).Return(nil)
	m.participantRepo.On("Insert", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Participant).ID = 32
	}).Return(nil)

	// The settlement debit overdraws the wallet, so completion aborts and the
	// registration is unwound: payment failed, participant cancelled.
	m.paymentRepo.On("GetForUpdate", ctx, int64(55), mock.Anything).Return(pendingEntryPayment(55, 10000), nil)
	m.userRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{
		ID:            1,
		WalletBalance: decimal.NewFromInt(5000),
	}, nil)
	m.paymentRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Payment) bool {
		return p.ID == 55 && p.Status == model.PaymentFailed
	}), mock.Anything).Return(nil)
	m.participantRepo.On("UpdateStatus", ctx, int64(32), model.ParticipantPending, model.ParticipantCancelled, "entry payment failed", mock.Anything).Return(true, nil)

	resp, err := svc.Register(ctx, 5, 1, nil)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	m.userRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTournamentRegister_Premium_WithCoupon(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	coupon := activeCoupon()
	coupon.DiscountType = model.DiscountFixed
	coupon.DiscountValue = decimal.NewFromInt(4000)

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(registrationTournament(), nil)
	m.participantRepo.On("CountConfirmed", ctx, int64(5), mock.Anything).Return(0, nil).Once()
	m.couponRepo.On("GetByCode", ctx, "WELCOME").Return(coupon, nil)
	m.paymentRepo.On("Insert", ctx, mock.MatchedBy(func(p *model.Payment) bool {
		return p.Status == model.PaymentPending &&
			p.Amount.Equal(decimal.NewFromInt(6000))
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Payment).ID = 56
	}).Return(nil)
	m.couponRepo.On("IncrementUses", ctx, int64(10), mock.Anything).Return(true, nil)
	m.couponRepo.On("InsertUsage", ctx, mock.MatchedBy(func(u *model.CouponUsage) bool {
		return u.PaymentID == 56 && u.DiscountAmount.Equal(decimal.NewFromInt(4000))
	}), mock.Anything).Return(nil)
	m.participantRepo.On("Insert", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Participant).ID = 33
	}).Return(nil)

	// Settlement debits the discounted charge, not the full fee.
	m.paymentRepo.On("GetForUpdate", ctx, int64(56), mock.Anything).Return(pendingEntryPayment(56, 6000), nil)
	m.userRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{
		ID:            1,
		WalletBalance: decimal.NewFromInt(100000),
	}, nil)
	m.userRepo.On("UpdateBalance", ctx, int64(1), mock.MatchedBy(func(b decimal.Decimal) bool {
		return b.Equal(decimal.NewFromInt(94000))
	}), mock.Anything).Return(nil)
	m.transRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)
	m.paymentRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Payment) bool {
		return p.ID == 56 && p.Status == model.PaymentCompleted
	}), mock.Anything).Return(nil)
	m.participantRepo.On("GetByPayment", ctx, int64(56), mock.Anything).Return(&model.Participant{
		ID:           33,
		TournamentID: 5,
		UserID:       1,
		Status:       model.ParticipantPending,
	}, nil)
	m.participantRepo.On("UpdateStatus", ctx, int64(33), model.ParticipantPending, model.ParticipantConfirmed, "", mock.Anything).Return(true, nil)
	m.participantRepo.On("CountConfirmed", ctx, int64(5), mock.Anything).Return(1, nil).Once()
	m.tournamentRepo.On("UpdatePrizePool", ctx, int64(5), mock.MatchedBy(func(pool decimal.Decimal) bool {
		return pool.Equal(decimal.NewFromInt(10000))
	}), 1, mock.Anything).Return(nil)

	resp, err := svc.Register(ctx, 5, 1, &model.RegisterRequest{CouponCode: "WELCOME"})

	require.NoError(t, err)
	assert.Equal(t, "6000", resp.Payment.Amount)
}

func TestTournamentRegister_Full(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	tournament := registrationTournament()
	tournament.MaxParticipants = 4

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(tournament, nil)
	m.participantRepo.On("CountConfirmed", ctx, int64(5), mock.Anything).Return(4, nil)

	resp, err := svc.Register(ctx, 5, 1, nil)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrTournamentFull)
}

func TestTournamentRegister_Closed(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	tournament := registrationTournament()
	tournament.RegistrationEnd = time.Now().Add(-time.Minute)

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(tournament, nil)

	resp, err := svc.Register(ctx, 5, 1, nil)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrRegistrationClosed)
}

func TestDistributePrizes_ThreePlacements(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	tournament := registrationTournament()
	tournament.Status = model.TournamentFinished
	tournament.PrizePool = decimal.NewFromInt(100000)

	ranked := []*model.Participant{
		{ID: 31, TournamentID: 5, UserID: 1},
		{ID: 32, TournamentID: 5, UserID: 2},
		{ID: 33, TournamentID: 5, UserID: 3},
		{ID: 34, TournamentID: 5, UserID: 4},
	}

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(tournament, nil)
	m.participantRepo.On("ListRanked", ctx, int64(5), 3, mock.Anything).Return(ranked, nil)

	// Pool after 10% commission is 90000; three placements split 50/30/20.
	prizes := map[int64]decimal.Decimal{
		31: decimal.NewFromInt(45000),
		32: decimal.NewFromInt(27000),
		33: decimal.NewFromInt(18000),
	}
	for id, prize := range prizes {
		id, prize := id, prize
		m.participantRepo.On("SetPrize", ctx, id, mock.AnythingOfType("int"), mock.MatchedBy(func(p decimal.Decimal) bool {
			return p.Equal(prize)
		}), mock.Anything).Return(true, nil)
	}
	m.paymentRepo.On("Insert", ctx, mock.MatchedBy(func(p *model.Payment) bool {
		return p.Type == model.PaymentPrize &&
			p.Status == model.PaymentCompleted &&
			p.Gateway == model.GatewayAdmin
	}), mock.Anything).Return(nil).Times(3)
	for userID, prize := range map[int64]decimal.Decimal{1: decimal.NewFromInt(45000), 2: decimal.NewFromInt(27000), 3: decimal.NewFromInt(18000)} {
		userID, prize := userID, prize
		m.userRepo.On("GetUserForUpdate", ctx, userID, mock.Anything).Return(&model.User{
			ID:            userID,
			WalletBalance: decimal.Zero,
		}, nil)
		m.userRepo.On("UpdateBalance", ctx, userID, mock.MatchedBy(func(b decimal.Decimal) bool {
			return b.Equal(prize)
		}), mock.Anything).Return(nil)
	}
	m.transRepo.On("Insert", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TransactionCredit
	}), mock.Anything).Return(nil).Times(3)

	err := svc.DistributePrizes(ctx, 5)

	require.NoError(t, err)
	// The fourth ranked participant is outside the placement table.
	m.participantRepo.AssertNotCalled(t, "SetPrize", ctx, int64(34), mock.Anything, mock.Anything, mock.Anything)
}

func TestDistributePrizes_Rerun_PaysNothing(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	tournament := registrationTournament()
	tournament.Status = model.TournamentFinished
	tournament.PrizePool = decimal.NewFromInt(100000)

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(tournament, nil)
	m.participantRepo.On("ListRanked", ctx, int64(5), 3, mock.Anything).Return([]*model.Participant{
		{ID: 31, TournamentID: 5, UserID: 1},
	}, nil)
	m.participantRepo.On("SetPrize", ctx, int64(31), 1, mock.Anything, mock.Anything).Return(false, nil)

	err := svc.DistributePrizes(ctx, 5)

	require.NoError(t, err)
	m.paymentRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	m.userRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDistributePrizes_NotFinished(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(registrationTournament(), nil)

	err := svc.DistributePrizes(ctx, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestSharesFor(t *testing.T) {
	tests := []struct {
		bestOf int
		ranked int
		want   []int64
	}{
		{3, 10, []int64{50, 30, 20}},
		{3, 2, []int64{60, 40}},
		{1, 5, []int64{100}},
		{5, 5, []int64{40, 25, 15, 12, 8}},
		{10, 10, []int64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sharesFor(tt.bestOf, tt.ranked))
	}
}

func TestTournamentCancel_RefundsFreeParticipants(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	tournament := registrationTournament()
	tournament.Pricing = model.PricingFree
	tournament.EntryFee = decimal.Zero

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(tournament, nil)
	m.tournamentRepo.On("UpdateStatus", ctx, int64(5), model.TournamentRegistration, model.TournamentCancelled, mock.Anything).Return(true, nil)
	m.participantRepo.On("ListConfirmed", ctx, int64(5)).Return([]*model.Participant{
		{ID: 31, TournamentID: 5, UserID: 1, Status: model.ParticipantConfirmed},
		{ID: 32, TournamentID: 5, UserID: 2, Status: model.ParticipantConfirmed},
	}, nil)
	m.participantRepo.On("UpdateStatus", ctx, mock.AnythingOfType("int64"), model.ParticipantConfirmed, model.ParticipantCancelled, mock.AnythingOfType("string"), mock.Anything).Return(true, nil).Times(2)

	err := svc.Cancel(ctx, 5, "rained out")

	require.NoError(t, err)
	m.paymentRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTournamentCancel_AlreadyFinished(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	tournament := registrationTournament()
	tournament.Status = model.TournamentFinished

	passthroughTx(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(tournament, nil)

	err := svc.Cancel(ctx, 5, "too late")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestInvite_TerminalTournament(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	tournament := registrationTournament()
	tournament.Status = model.TournamentCancelled
	m.tournamentRepo.On("GetByID", ctx, int64(5)).Return(tournament, nil)

	inv, err := svc.Invite(ctx, 5, 2, nil, "join us")

	require.Error(t, err)
	assert.Nil(t, inv)
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestInvite_HappyPath(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	m.tournamentRepo.On("GetByID", ctx, int64(5)).Return(registrationTournament(), nil)
	passthroughTx(ctx, m.dbManager)
	m.invitationRepo.On("Insert", ctx, mock.MatchedBy(func(inv *model.Invitation) bool {
		return inv.TournamentID == 5 && inv.InvitedUser == 2 &&
			inv.Status == model.InvitationPending &&
			inv.Code != "" &&
			inv.ExpiresAt.After(time.Now().Add(6*24*time.Hour))
	}), mock.Anything).Return(nil)

	inv, err := svc.Invite(ctx, 5, 2, nil, "join us")

	require.NoError(t, err)
	assert.Equal(t, model.InvitationPending, inv.Status)
}

func TestRespondInvitation_Accept(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.invitationRepo.On("GetByCode", ctx, "abc", mock.Anything).Return(&model.Invitation{
		ID:        7,
		Status:    model.InvitationPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	m.invitationRepo.On("UpdateStatus", ctx, int64(7), model.InvitationPending, model.InvitationAccepted, mock.Anything).Return(true, nil)

	err := svc.RespondInvitation(ctx, "abc", true)

	require.NoError(t, err)
}

func TestRespondInvitation_Expired(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.invitationRepo.On("GetByCode", ctx, "abc", mock.Anything).Return(&model.Invitation{
		ID:        7,
		Status:    model.InvitationPending,
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)
	m.invitationRepo.On("UpdateStatus", ctx, int64(7), model.InvitationPending, model.InvitationExpired, mock.Anything).Return(true, nil)

	err := svc.RespondInvitation(ctx, "abc", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestDisqualifyParticipant(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.participantRepo.On("GetForUpdate", ctx, int64(31), mock.Anything).Return(&model.Participant{
		ID:     31,
		UserID: 1,
		Status: model.ParticipantConfirmed,
	}, nil)
	m.participantRepo.On("UpdateStatus", ctx, int64(31), model.ParticipantConfirmed, model.ParticipantDisqualified, "cheating", mock.Anything).Return(true, nil)

	err := svc.DisqualifyParticipant(ctx, 31, "cheating")

	require.NoError(t, err)
}
