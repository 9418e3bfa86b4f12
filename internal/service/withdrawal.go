package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clash-arena/internal/config"
	"clash-arena/internal/model"
	"clash-arena/internal/notify"
	"clash-arena/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type WithdrawalServiceImpl struct {
	withdrawalRepo repository.WithdrawalRepository
	paymentRepo    repository.PaymentRepository
	userRepo       repository.UserRepository
	ledger         LedgerService
	dbManager      repository.DBManager
	sink           notify.Sink
	logger         zerolog.Logger

	fee           decimal.Decimal
	minWithdrawal decimal.Decimal
}

var _ WithdrawalService = (*WithdrawalServiceImpl)(nil)

func NewWithdrawalService(
	withdrawalRepo repository.WithdrawalRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	ledger LedgerService,
	dbManager repository.DBManager,
	sink notify.Sink,
	cfg config.PaymentConfig,
	logger zerolog.Logger,
) (WithdrawalService, error) {
	fee, err := decimal.NewFromString(cfg.WithdrawalFee)
	if err != nil {
		return nil, fmt.Errorf("invalid withdrawal fee %q: %w", cfg.WithdrawalFee, err)
	}
	minWithdrawal, err := decimal.NewFromString(cfg.MinWithdrawal)
	if err != nil {
		return nil, fmt.Errorf("invalid minimum withdrawal %q: %w", cfg.MinWithdrawal, err)
	}
	return &WithdrawalServiceImpl{
		withdrawalRepo: withdrawalRepo,
		paymentRepo:    paymentRepo,
		userRepo:       userRepo,
		ledger:         ledger,
		dbManager:      dbManager,
		sink:           sink,
		logger:         logger,
		fee:            fee,
		minWithdrawal:  minWithdrawal,
	}, nil
}

func (s *WithdrawalServiceImpl) Request(ctx context.Context, userID int64, req *model.WithdrawalRequest) (*model.Withdrawal, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if amount.LessThan(s.minWithdrawal) {
		return nil, fmt.Errorf("%w: minimum withdrawal is %s", model.ErrInvalidAmount, s.minWithdrawal.StringFixed(0))
	}
	if err := validateCardNumber(req.BankCardNumber); err != nil {
		return nil, err
	}
	if err := validateSheba(req.ShebaNumber); err != nil {
		return nil, err
	}
	finalAmount := amount.Sub(s.fee)
	if finalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount does not cover the withdrawal fee", model.ErrInvalidAmount)
	}

	// Advisory check only; the wallet is debited at approval time, where the
	// balance is re-checked under the row lock.
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	if balance.LessThan(amount) {
		return nil, model.ErrInsufficientFunds
	}

	withdrawal := &model.Withdrawal{
		UserID:            userID,
		Amount:            amount,
		Fee:               s.fee,
		FinalAmount:       finalAmount,
		Status:            model.WithdrawalPending,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		BankCardNumber:    req.BankCardNumber,
		AccountHolderName: req.AccountHolderName,
		ShebaNumber:       req.ShebaNumber,
	}
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		return s.withdrawalRepo.Insert(ctx, withdrawal, tx)
	})
	if err != nil {
		return nil, fmt.Errorf("insert withdrawal: %w", err)
	}

	s.logger.Info().
		Int64("withdrawal_id", withdrawal.ID).
		Int64("user_id", userID).
		Str("amount", amount.StringFixed(0)).
		Msg("withdrawal requested")

	s.sink.Notify(ctx, notify.Event{
		UserID:   userID,
		Type:     "withdrawal_requested",
		Title:    "Withdrawal requested",
		Message:  fmt.Sprintf("Your withdrawal request of %s is awaiting review", amount.StringFixed(0)),
		Priority: model.PriorityNormal,
	})
	return withdrawal, nil
}

func (s *WithdrawalServiceImpl) Approve(ctx context.Context, withdrawalID, adminID int64, trackingCode string) error {
	var withdrawal *model.Withdrawal

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		w, err := s.withdrawalRepo.GetForUpdate(ctx, withdrawalID, tx)
		if err != nil {
			return fmt.Errorf("get withdrawal for update: %w", err)
		}
		if w.Status != model.WithdrawalPending {
			return fmt.Errorf("%w: only pending withdrawals can be approved, got %s", model.ErrInvalidStateTransition, w.Status)
		}

		now := time.Now()
		payment := &model.Payment{
			TransactionID: uuid.New().String(),
			UserID:        w.UserID,
			Type:          model.PaymentWithdrawal,
			Amount:        w.Amount,
			Fee:           w.Fee,
			FinalAmount:   w.FinalAmount,
			Status:        model.PaymentProcessing,
			Gateway:       model.GatewayAdmin,
			Description:   fmt.Sprintf("withdrawal #%d", w.ID),
		}
		if err := s.paymentRepo.Insert(ctx, payment, tx); err != nil {
			return fmt.Errorf("insert withdrawal payment: %w", err)
		}

		// The balance is re-checked under the user lock inside Record; a
		// wallet drained since the request fails here with ErrInsufficientFunds.
		_, err = s.ledger.Record(ctx, tx, RecordParams{
			UserID:      w.UserID,
			Type:        model.TransactionDebit,
			Amount:      w.Amount,
			Description: fmt.Sprintf("withdrawal #%d approved", w.ID),
			PaymentID:   &payment.ID,
		})
		if err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}

		if trackingCode == "" {
			trackingCode = fmt.Sprintf("WD%d%d", w.ID, now.Unix())
		}
		w.Status = model.WithdrawalApproved
		w.TrackingCode = trackingCode
		w.ProcessedBy = &adminID
		w.ProcessedAt = &now
		w.PaymentID = &payment.ID
		if err := s.withdrawalRepo.Update(ctx, w, tx); err != nil {
			return fmt.Errorf("update withdrawal: %w", err)
		}

		withdrawal = w
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Int64("withdrawal_id", withdrawal.ID).
		Int64("user_id", withdrawal.UserID).
		Int64("admin_id", adminID).
		Str("amount", withdrawal.Amount.StringFixed(0)).
		Msg("withdrawal approved")

	s.sink.Notify(ctx, notify.Event{
		UserID:   withdrawal.UserID,
		Type:     "withdrawal_approved",
		Title:    "Withdrawal approved",
		Message:  fmt.Sprintf("Your withdrawal of %s was approved and is being processed", withdrawal.Amount.StringFixed(0)),
		Priority: model.PriorityHigh,
		Metadata: map[string]string{"tracking_code": withdrawal.TrackingCode},
	})
	return nil
}

func (s *WithdrawalServiceImpl) Reject(ctx context.Context, withdrawalID, adminID int64, reason string) error {
	var withdrawal *model.Withdrawal

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		w, err := s.withdrawalRepo.GetForUpdate(ctx, withdrawalID, tx)
		if err != nil {
			return fmt.Errorf("get withdrawal for update: %w", err)
		}
		if w.Status != model.WithdrawalPending {
			return fmt.Errorf("%w: only pending withdrawals can be rejected, got %s", model.ErrInvalidStateTransition, w.Status)
		}

		now := time.Now()
		w.Status = model.WithdrawalRejected
		w.RejectionReason = reason
		w.ProcessedBy = &adminID
		w.ProcessedAt = &now
		if err := s.withdrawalRepo.Update(ctx, w, tx); err != nil {
			return fmt.Errorf("update withdrawal: %w", err)
		}
		withdrawal = w
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Int64("withdrawal_id", withdrawal.ID).
		Int64("admin_id", adminID).
		Str("reason", reason).
		Msg("withdrawal rejected")

	s.sink.Notify(ctx, notify.Event{
		UserID:   withdrawal.UserID,
		Type:     "withdrawal_rejected",
		Title:    "Withdrawal rejected",
		Message:  reason,
		Priority: model.PriorityHigh,
	})
	return nil
}

func (s *WithdrawalServiceImpl) Complete(ctx context.Context, withdrawalID int64, referenceNumber string) error {
	var withdrawal *model.Withdrawal

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		w, err := s.withdrawalRepo.GetForUpdate(ctx, withdrawalID, tx)
		if err != nil {
			return fmt.Errorf("get withdrawal for update: %w", err)
		}
		if w.Status != model.WithdrawalApproved && w.Status != model.WithdrawalProcessing {
			return fmt.Errorf("%w: only approved withdrawals can be completed, got %s", model.ErrInvalidStateTransition, w.Status)
		}

		now := time.Now()
		w.Status = model.WithdrawalCompleted
		w.ReferenceNumber = referenceNumber
		w.CompletedAt = &now
		if err := s.withdrawalRepo.Update(ctx, w, tx); err != nil {
			return fmt.Errorf("update withdrawal: %w", err)
		}

		// Settle the linked payment record; the wallet was already debited at
		// approval so completion moves no money.
		if w.PaymentID != nil {
			p, err := s.paymentRepo.GetForUpdate(ctx, *w.PaymentID, tx)
			if err != nil {
				return fmt.Errorf("get withdrawal payment: %w", err)
			}
			if p.Status != model.PaymentCompleted {
				p.Status = model.PaymentCompleted
				p.CompletedAt = &now
				p.GatewayTrackingCode = &referenceNumber
				if err := s.paymentRepo.Update(ctx, p, tx); err != nil {
					return fmt.Errorf("update withdrawal payment: %w", err)
				}
			}
		}

		withdrawal = w
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Int64("withdrawal_id", withdrawal.ID).
		Str("reference", referenceNumber).
		Msg("withdrawal completed")

	s.sink.Notify(ctx, notify.Event{
		UserID:   withdrawal.UserID,
		Type:     "withdrawal_completed",
		Title:    "Withdrawal completed",
		Message:  fmt.Sprintf("%s was transferred to your bank account", withdrawal.FinalAmount.StringFixed(0)),
		Priority: model.PriorityHigh,
		Metadata: map[string]string{"reference_number": referenceNumber},
	})
	return nil
}

func (s *WithdrawalServiceImpl) Cancel(ctx context.Context, withdrawalID int64, reason string) error {
	var (
		withdrawal *model.Withdrawal
		refunded   bool
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		w, err := s.withdrawalRepo.GetForUpdate(ctx, withdrawalID, tx)
		if err != nil {
			return fmt.Errorf("get withdrawal for update: %w", err)
		}

		switch w.Status {
		case model.WithdrawalPending:
			// Nothing was debited yet.
		case model.WithdrawalApproved, model.WithdrawalProcessing:
			// The approval debit comes back.
			_, err := s.ledger.Record(ctx, tx, RecordParams{
				UserID:      w.UserID,
				Type:        model.TransactionCredit,
				Amount:      w.Amount,
				Description: fmt.Sprintf("withdrawal #%d cancelled", w.ID),
				PaymentID:   w.PaymentID,
			})
			if err != nil {
				return fmt.Errorf("credit cancelled withdrawal: %w", err)
			}
			refunded = true

			if w.PaymentID != nil {
				p, err := s.paymentRepo.GetForUpdate(ctx, *w.PaymentID, tx)
				if err != nil {
					return fmt.Errorf("get withdrawal payment: %w", err)
				}
				if p.Status == model.PaymentProcessing {
					p.Status = model.PaymentCancelled
					if err := s.paymentRepo.Update(ctx, p, tx); err != nil {
						return fmt.Errorf("update withdrawal payment: %w", err)
					}
				}
			}
		default:
			return fmt.Errorf("%w: cannot cancel withdrawal in status %s", model.ErrInvalidStateTransition, w.Status)
		}

		w.Status = model.WithdrawalCancelled
		if reason != "" {
			w.RejectionReason = reason
		}
		if err := s.withdrawalRepo.Update(ctx, w, tx); err != nil {
			return fmt.Errorf("update withdrawal: %w", err)
		}
		withdrawal = w
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Int64("withdrawal_id", withdrawal.ID).
		Bool("refunded", refunded).
		Msg("withdrawal cancelled")

	s.sink.Notify(ctx, notify.Event{
		UserID:   withdrawal.UserID,
		Type:     "withdrawal_cancelled",
		Title:    "Withdrawal cancelled",
		Message:  "Your withdrawal request was cancelled",
		Priority: model.PriorityNormal,
	})
	return nil
}

func (s *WithdrawalServiceImpl) Get(ctx context.Context, withdrawalID int64) (*model.Withdrawal, error) {
	w, err := s.withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	return w, nil
}

func validateCardNumber(card string) error {
	if len(card) != 16 {
		return fmt.Errorf("%w: card number must be 16 digits", model.ErrValidation)
	}
	for _, r := range card {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: card number must be 16 digits", model.ErrValidation)
		}
	}
	return nil
}

// validateSheba accepts an empty value or an IBAN of the form IR + 24 digits.
func validateSheba(sheba string) error {
	if sheba == "" {
		return nil
	}
	if len(sheba) != 26 || !strings.HasPrefix(sheba, "IR") {
		return fmt.Errorf("%w: sheba number must be IR followed by 24 digits", model.ErrValidation)
	}
	for _, r := range sheba[2:] {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: sheba number must be IR followed by 24 digits", model.ErrValidation)
		}
	}
	return nil
}
