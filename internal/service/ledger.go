package service

import (
	"context"
	"fmt"

	"clash-arena/internal/model"
	"clash-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type LedgerServiceImpl struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	logger          zerolog.Logger
}

var _ LedgerService = (*LedgerServiceImpl)(nil)

func NewLedgerService(
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	logger zerolog.Logger,
) LedgerService {
	return &LedgerServiceImpl{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// Record locks the user row, validates the movement and writes the ledger
// entry plus the new balance inside the caller's transaction. The caller owns
// commit and rollback; a returned error must abort the whole transaction.
func (s *LedgerServiceImpl) Record(ctx context.Context, tx pgx.Tx, params RecordParams) (*model.Transaction, error) {
	if params.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: ledger amount must be positive", model.ErrInvalidAmount)
	}

	user, err := s.userRepo.GetUserForUpdate(ctx, params.UserID, tx)
	if err != nil {
		return nil, fmt.Errorf("get user for update: %w", err)
	}

	newBalance := user.WalletBalance
	switch params.Type {
	case model.TransactionCredit:
		newBalance = newBalance.Add(params.Amount)
	case model.TransactionDebit:
		newBalance = newBalance.Sub(params.Amount)
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", model.ErrValidation, params.Type)
	}

	// Negative balance is not allowed; reject, never clamp.
	if newBalance.LessThan(decimal.Zero) {
		return nil, model.ErrInsufficientFunds
	}

	if err := s.userRepo.UpdateBalance(ctx, params.UserID, newBalance, tx); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	entry := &model.Transaction{
		UserID:        params.UserID,
		Type:          params.Type,
		Amount:        params.Amount,
		BalanceBefore: user.WalletBalance,
		BalanceAfter:  newBalance,
		Description:   params.Description,
		PaymentID:     params.PaymentID,
		TournamentID:  params.TournamentID,
	}
	if err := s.transactionRepo.Insert(ctx, entry, tx); err != nil {
		return nil, fmt.Errorf("insert ledger entry: %w", err)
	}

	s.logger.Info().
		Int64("user_id", params.UserID).
		Str("type", params.Type.String()).
		Str("amount", params.Amount.StringFixed(0)).
		Str("balance_before", user.WalletBalance.StringFixed(0)).
		Str("balance_after", newBalance.StringFixed(0)).
		Msg("ledger entry recorded")

	return entry, nil
}

func (s *LedgerServiceImpl) GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return &model.BalanceResponse{
		UserID:  userID,
		Balance: balance.StringFixed(0),
	}, nil
}

func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	transactions, err := s.transactionRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return transactions, nil
}
