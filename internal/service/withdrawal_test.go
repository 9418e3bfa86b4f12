package service

import (
	"context"
	"testing"
	"time"

	"clash-arena/internal/config"
	"clash-arena/internal/model"
	"clash-arena/internal/notify"
	mocks "clash-arena/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testCardNumber  = "6037991234567890"
	testShebaNumber = "IR123456789012345678901234"
)

type withdrawalServiceMocks struct {
	withdrawalRepo *mocks.WithdrawalRepository
	paymentRepo    *mocks.PaymentRepository
	userRepo       *mocks.UserRepository
	transRepo      *mocks.TransactionRepository
	dbManager      *mocks.DBManager
}

func newWithdrawalServiceForTest(t *testing.T) (WithdrawalService, *withdrawalServiceMocks) {
	logger := zerolog.Nop()
	m := &withdrawalServiceMocks{
		withdrawalRepo: mocks.NewWithdrawalRepository(t),
		paymentRepo:    mocks.NewPaymentRepository(t),
		userRepo:       mocks.NewUserRepository(t),
		transRepo:      mocks.NewTransactionRepository(t),
		dbManager:      mocks.NewDBManager(t),
	}

	ledger := NewLedgerService(m.userRepo, m.transRepo, logger)
	svc, err := NewWithdrawalService(
		m.withdrawalRepo, m.paymentRepo, m.userRepo,
		ledger, m.dbManager, notify.NewLogSink(logger),
		config.PaymentConfig{Expiry: 15 * time.Minute, WithdrawalFee: "1000", MinWithdrawal: "10000"},
		logger,
	)
	require.NoError(t, err)
	return svc, m
}

func TestWithdrawalRequest_HappyPath(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalServiceForTest(t)

	m.userRepo.On("GetBalance", ctx, int64(1)).Return(decimal.NewFromInt(100000), nil)
	passthroughTx(ctx, m.dbManager)
	m.withdrawalRepo.On("Insert", ctx, mock.MatchedBy(func(w *model.Withdrawal) bool {
		return w.UserID == 1 &&
			w.Status == model.WithdrawalPending &&
			w.Amount.Equal(decimal.NewFromInt(50000)) &&
			w.Fee.Equal(decimal.NewFromInt(1000)) &&
			w.FinalAmount.Equal(decimal.NewFromInt(49000))
	}), mock.Anything).Return(nil)

	w, err := svc.Request(ctx, 1, &model.WithdrawalRequest{
		Amount:            "50000",
		BankAccountNumber: "123456",
		BankCardNumber:    testCardNumber,
		AccountHolderName: "Test User",
		ShebaNumber:       testShebaNumber,
	})

	require.NoError(t, err)
	assert.Equal(t, model.WithdrawalPending, w.Status)
	assert.True(t, w.FinalAmount.Equal(decimal.NewFromInt(49000)))
}

func TestWithdrawalRequest_BelowMinimum(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWithdrawalServiceForTest(t)

	w, err := svc.Request(ctx, 1, &model.WithdrawalRequest{
		Amount:         "5000",
		BankCardNumber: testCardNumber,
	})

	require.Error(t, err)
	assert.Nil(t, w)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestWithdrawalRequest_InvalidCardNumber(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWithdrawalServiceForTest(t)

	for _, card := range []string{"", "1234", "603799123456789X"} {
		w, err := svc.Request(ctx, 1, &model.WithdrawalRequest{
			Amount:         "50000",
			BankCardNumber: card,
		})
		require.Error(t, err)
		assert.Nil(t, w)
		assert.ErrorIs(t, err, model.ErrValidation)
	}
}

func TestWithdrawalRequest_InvalidSheba(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWithdrawalServiceForTest(t)

	w, err := svc.Request(ctx, 1, &model.WithdrawalRequest{
		Amount:         "50000",
		BankCardNumber: testCardNumber,
		ShebaNumber:    "IR12345",
	})

	require.Error(t, err)
	assert.Nil(t, w)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestWithdrawalRequest_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalServiceForTest(t)

	m.userRepo.On("GetBalance", ctx, int64(1)).Return(decimal.NewFromInt(20000), nil)

	w, err := svc.Request(ctx, 1, &model.WithdrawalRequest{
		Amount:         "50000",
		BankCardNumber: testCardNumber,
	})

	require.Error(t, err)
	assert.Nil(t, w)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	m.withdrawalRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawalApprove_DebitsWallet(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.withdrawalRepo.On("GetForUpdate", ctx, int64(4), mock.Anything).Return(&model.Withdrawal{
		ID:          4,
		UserID:      1,
		Amount:      decimal.NewFromInt(50000),
		Fee:         decimal.NewFromInt(1000),
		FinalAmount: decimal.NewFromInt(49000),
		Status:      model.WithdrawalPending,
	}, nil)
	m.paymentRepo.On("Insert", ctx, mock.MatchedBy(func(p *model.Payment) bool {
		return p.Type == model.PaymentWithdrawal &&
			p.Status == model.PaymentProcessing &&
			p.Gateway == model.GatewayAdmin
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Payment).ID = 77
	}).Return(nil)
	m.userRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{
		ID:            1,
		WalletBalance: decimal.NewFromInt(60000),
	}, nil)
	m.userRepo.On("UpdateBalance", ctx, int64(1), mock.MatchedBy(func(b decimal.Decimal) bool {
		return b.Equal(decimal.NewFromInt(10000))
	}), mock.Anything).Return(nil)
	m.transRepo.On("Insert", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TransactionDebit && trans.Amount.Equal(decimal.NewFromInt(50000))
	}), mock.Anything).Return(nil)
	m.withdrawalRepo.On("Update", ctx, mock.MatchedBy(func(w *model.Withdrawal) bool {
		return w.Status == model.WithdrawalApproved &&
			w.TrackingCode != "" &&
			w.ProcessedBy != nil && *w.ProcessedBy == 9 &&
			w.PaymentID != nil && *w.PaymentID == 77
	}), mock.Anything).Return(nil)

	err := svc.Approve(ctx, 4, 9, "")

	require.NoError(t, err)
}

func TestWithdrawalApprove_DrainedWallet_Fails(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.withdrawalRepo.On("GetForUpdate", ctx, int64(4), mock.Anything).Return(&model.Withdrawal{
		ID:     4,
		UserID: 1,
		Amount: decimal.NewFromInt(50000),
		Status: model.WithdrawalPending,
	}, nil)
	m.paymentRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)
	m.userRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{
		ID:            1,
		WalletBalance: decimal.NewFromInt(30000),
	}, nil)

	err := svc.Approve(ctx, 4, 9, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	m.withdrawalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawalApprove_NotPending(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.withdrawalRepo.On("GetForUpdate", ctx, int64(4), mock.Anything).Return(&model.Withdrawal{
		ID:     4,
		Status: model.WithdrawalCompleted,
	}, nil)

	err := svc.Approve(ctx, 4, 9, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestWithdrawalReject(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.withdrawalRepo.On("GetForUpdate", ctx, int64(4), mock.Anything).Return(&model.Withdrawal{
		ID:     4,
		UserID: 1,
		Status: model.WithdrawalPending,
	}, nil)
	m.withdrawalRepo.On("Update", ctx, mock.MatchedBy(func(w *model.Withdrawal) bool {
		return w.Status == model.WithdrawalRejected && w.RejectionReason == "suspicious account"
	}), mock.Anything).Return(nil)

	err := svc.Reject(ctx, 4, 9, "suspicious account")

	require.NoError(t, err)
	m.userRepo.AssertNotCalled(t, "GetUserForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawalComplete_SettlesLinkedPayment(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalServiceForTest(t)

	paymentID := int64(77)

	passthroughTx(ctx, m.dbManager)
	m.withdrawalRepo.On("GetForUpdate", ctx, int64(4), mock.Anything).Return(&model.Withdrawal{
		ID:          4,
		UserID:      1,
		FinalAmount: decimal.NewFromInt(49000),
		Status:      model.WithdrawalApproved,
		PaymentID:   &paymentID,
	}, nil)
	m.withdrawalRepo.On("Update", ctx, mock.MatchedBy(func(w *model.Withdrawal) bool {
		return w.Status == model.WithdrawalCompleted && w.ReferenceNumber == "REF-1"
	}), mock.Anything).Return(nil)
	m.paymentRepo.On("GetForUpdate", ctx, paymentID, mock.Anything).Return(&model.Payment{
		ID:     paymentID,
		Status: model.PaymentProcessing,
	}, nil)
	m.paymentRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Payment) bool {
		return p.Status == model.PaymentCompleted
	}), mock.Anything).Return(nil)

	err := svc.Complete(ctx, 4, "REF-1")

	require.NoError(t, err)
	// Completion moves no wallet money; the debit happened at approval.
	m.userRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawalCancel_AfterApproval_CreditsBack(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalServiceForTest(t)

	paymentID := int64(77)

	passthroughTx(ctx, m.dbManager)
	m.withdrawalRepo.On("GetForUpdate", ctx, int64(4), mock.Anything).Return(&model.Withdrawal{
		ID:        4,
		UserID:    1,
		Amount:    decimal.NewFromInt(50000),
		Status:    model.WithdrawalApproved,
		PaymentID: &paymentID,
	}, nil)
	m.userRepo.On("GetUserForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{
		ID:            1,
		WalletBalance: decimal.NewFromInt(10000),
	}, nil)
	m.userRepo.On("UpdateBalance", ctx, int64(1), mock.MatchedBy(func(b decimal.Decimal) bool {
		return b.Equal(decimal.NewFromInt(60000))
	}), mock.Anything).Return(nil)
	m.transRepo.On("Insert", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TransactionCredit && trans.Amount.Equal(decimal.NewFromInt(50000))
	}), mock.Anything).Return(nil)
	m.paymentRepo.On("GetForUpdate", ctx, paymentID, mock.Anything).Return(&model.Payment{
		ID:     paymentID,
		Status: model.PaymentProcessing,
	}, nil)
	m.paymentRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Payment) bool {
		return p.Status == model.PaymentCancelled
	}), mock.Anything).Return(nil)
	m.withdrawalRepo.On("Update", ctx, mock.MatchedBy(func(w *model.Withdrawal) bool {
		return w.Status == model.WithdrawalCancelled
	}), mock.Anything).Return(nil)

	err := svc.Cancel(ctx, 4, "user request")

	require.NoError(t, err)
}

func TestWithdrawalCancel_Pending_NoCredit(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.withdrawalRepo.On("GetForUpdate", ctx, int64(4), mock.Anything).Return(&model.Withdrawal{
		ID:     4,
		UserID: 1,
		Status: model.WithdrawalPending,
	}, nil)
	m.withdrawalRepo.On("Update", ctx, mock.MatchedBy(func(w *model.Withdrawal) bool {
		return w.Status == model.WithdrawalCancelled
	}), mock.Anything).Return(nil)

	err := svc.Cancel(ctx, 4, "")

	require.NoError(t, err)
	m.userRepo.AssertNotCalled(t, "GetUserForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawalCancel_Completed_Rejected(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.withdrawalRepo.On("GetForUpdate", ctx, int64(4), mock.Anything).Return(&model.Withdrawal{
		ID:     4,
		Status: model.WithdrawalCompleted,
	}, nil)

	err := svc.Cancel(ctx, 4, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
}
