package service_test

import (
	"context"
	"errors"
	"testing"

	"clash-arena/internal/model"
	"clash-arena/internal/notify"
	"clash-arena/internal/service"
	repomocks "clash-arena/mocks/repository"
	svcmocks "clash-arena/mocks/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cancelServiceMocks struct {
	tournamentRepo  *repomocks.TournamentRepository
	participantRepo *repomocks.ParticipantRepository
	invitationRepo  *repomocks.InvitationRepository
	paymentRepo     *repomocks.PaymentRepository
	payments        *svcmocks.PaymentService
	dbManager       *repomocks.DBManager
}

// newCancelServiceForTest mocks the payment service so cancellation tests can
// observe the refund calls and the order they happen in relative to the
// participant status flips.
func newCancelServiceForTest(t *testing.T) (service.TournamentService, *cancelServiceMocks) {
	logger := zerolog.Nop()
	m := &cancelServiceMocks{
		tournamentRepo:  repomocks.NewTournamentRepository(t),
		participantRepo: repomocks.NewParticipantRepository(t),
		invitationRepo:  repomocks.NewInvitationRepository(t),
		paymentRepo:     repomocks.NewPaymentRepository(t),
		payments:        svcmocks.NewPaymentService(t),
		dbManager:       repomocks.NewDBManager(t),
	}
	svc := service.NewTournamentService(
		m.tournamentRepo, m.participantRepo, m.invitationRepo, m.paymentRepo,
		m.payments, nil, nil, m.dbManager, notify.NewLogSink(logger), logger,
	)
	return svc, m
}

func runTxDirectly(ctx context.Context, m *repomocks.DBManager) {
	m.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
}

func premiumTournament() *model.Tournament {
	return &model.Tournament{
		ID:       5,
		Title:    "Friday Clash",
		Status:   model.TournamentRegistration,
		Pricing:  model.PricingPremium,
		EntryFee: decimal.NewFromInt(10000),
	}
}

func paidParticipant(id, userID, paymentID int64) *model.Participant {
	return &model.Participant{
		ID:           id,
		TournamentID: 5,
		UserID:       userID,
		Status:       model.ParticipantConfirmed,
		PaymentID:    &paymentID,
	}
}

func completedEntryPayment(id int64) *model.Payment {
	tournamentID := int64(5)
	return &model.Payment{
		ID:            id,
		TransactionID: "tx-55",
		UserID:        1,
		Type:          model.PaymentTournamentEntry,
		Amount:        decimal.NewFromInt(10000),
		FinalAmount:   decimal.NewFromInt(10000),
		Status:        model.PaymentCompleted,
		Gateway:       model.GatewayWallet,
		TournamentID:  &tournamentID,
	}
}

func TestCancel_PaidParticipants_RefundsEachEntry(t *testing.T) {
	ctx := context.Background()
	svc, m := newCancelServiceForTest(t)

	runTxDirectly(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(premiumTournament(), nil)
	m.tournamentRepo.On("UpdateStatus", ctx, int64(5), model.TournamentRegistration, model.TournamentCancelled, mock.Anything).Return(true, nil)

	first := completedEntryPayment(55)
	second := completedEntryPayment(56)
	second.TransactionID = "tx-56"
	second.UserID = 2

	m.participantRepo.On("ListConfirmed", ctx, int64(5)).Return([]*model.Participant{
		paidParticipant(41, 1, 55),
		paidParticipant(42, 2, 56),
	}, nil)
	m.paymentRepo.On("GetByID", ctx, int64(55)).Return(first, nil)
	m.paymentRepo.On("GetByID", ctx, int64(56)).Return(second, nil)
	m.payments.On("Refund", ctx, "tx-55", "tournament cancelled: rained out", (*int64)(nil)).Return(nil)
	m.payments.On("Refund", ctx, "tx-56", "tournament cancelled: rained out", (*int64)(nil)).Return(nil)
	m.participantRepo.On("UpdateStatus", ctx, int64(41), model.ParticipantConfirmed, model.ParticipantCancelled, "tournament cancelled: rained out", mock.Anything).Return(true, nil)
	m.participantRepo.On("UpdateStatus", ctx, int64(42), model.ParticipantConfirmed, model.ParticipantCancelled, "tournament cancelled: rained out", mock.Anything).Return(true, nil)

	err := svc.Cancel(ctx, 5, "rained out")

	require.NoError(t, err)
}

func TestCancel_RefundFailure_LeavesParticipantConfirmed(t *testing.T) {
	ctx := context.Background()
	svc, m := newCancelServiceForTest(t)

	runTxDirectly(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(premiumTournament(), nil)
	m.tournamentRepo.On("UpdateStatus", ctx, int64(5), model.TournamentRegistration, model.TournamentCancelled, mock.Anything).Return(true, nil)
	m.participantRepo.On("ListConfirmed", ctx, int64(5)).Return([]*model.Participant{
		paidParticipant(41, 1, 55),
	}, nil)
	m.paymentRepo.On("GetByID", ctx, int64(55)).Return(completedEntryPayment(55), nil)
	m.payments.On("Refund", ctx, "tx-55", mock.AnythingOfType("string"), (*int64)(nil)).Return(errors.New("ledger unavailable"))

	// Per-participant failures are logged, not returned.
	err := svc.Cancel(ctx, 5, "rained out")

	require.NoError(t, err)
	// The participant stays confirmed so a re-run lists them and retries the
	// refund; flipping first would strand the fee.
	m.participantRepo.AssertNotCalled(t, "UpdateStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_AlreadyRefundedEntry_OnlyFlips(t *testing.T) {
	ctx := context.Background()
	svc, m := newCancelServiceForTest(t)

	refunded := completedEntryPayment(55)
	refunded.Status = model.PaymentRefunded

	runTxDirectly(ctx, m.dbManager)
	m.tournamentRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(premiumTournament(), nil)
	m.tournamentRepo.On("UpdateStatus", ctx, int64(5), model.TournamentRegistration, model.TournamentCancelled, mock.Anything).Return(true, nil)
	m.participantRepo.On("ListConfirmed", ctx, int64(5)).Return([]*model.Participant{
		paidParticipant(41, 1, 55),
	}, nil)
	m.paymentRepo.On("GetByID", ctx, int64(55)).Return(refunded, nil)
	m.participantRepo.On("UpdateStatus", ctx, int64(41), model.ParticipantConfirmed, model.ParticipantCancelled, mock.AnythingOfType("string"), mock.Anything).Return(true, nil)

	// A re-run after a partial failure finds the refund already done and only
	// needs to finish the status flip.
	err := svc.Cancel(ctx, 5, "rained out")

	require.NoError(t, err)
	m.payments.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, model.PaymentRefunded, refunded.Status)
}
