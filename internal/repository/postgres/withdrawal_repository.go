package postgres

import (
	"context"
	"errors"
	"fmt"

	"clash-arena/internal/model"
	"clash-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.WithdrawalRepository = (*WithdrawalRepositoryImpl)(nil)

// WithdrawalRepositoryImpl is the PostgreSQL implementation of WithdrawalRepository
type WithdrawalRepositoryImpl struct {
	*TxManager
}

func NewWithdrawalRepository(pool *pgxpool.Pool) repository.WithdrawalRepository {
	return &WithdrawalRepositoryImpl{
		TxManager: NewTxManager(pool),
	}
}

const withdrawalColumns = `id, user_id, amount, fee, final_amount, status,
        bank_name, bank_account_number, bank_card_number, account_holder_name, sheba_number,
        tracking_code, reference_number, rejection_reason, processed_by, payment_id,
        created_at, processed_at, completed_at`

func scanWithdrawal(row pgx.Row) (*model.Withdrawal, error) {
	w := &model.Withdrawal{}
	err := row.Scan(&w.ID, &w.UserID, &w.Amount, &w.Fee, &w.FinalAmount, &w.Status,
		&w.BankName, &w.BankAccountNumber, &w.BankCardNumber, &w.AccountHolderName, &w.ShebaNumber,
		&w.TrackingCode, &w.ReferenceNumber, &w.RejectionReason, &w.ProcessedBy, &w.PaymentID,
		&w.CreatedAt, &w.ProcessedAt, &w.CompletedAt)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *WithdrawalRepositoryImpl) Insert(ctx context.Context, w *model.Withdrawal, tx pgx.Tx) error {
	query := `
        INSERT INTO withdrawals (user_id, amount, fee, final_amount, status,
            bank_name, bank_account_number, bank_card_number, account_holder_name, sheba_number, tracking_code)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query,
		w.UserID, w.Amount, w.Fee, w.FinalAmount, w.Status,
		w.BankName, w.BankAccountNumber, w.BankCardNumber, w.AccountHolderName, w.ShebaNumber, w.TrackingCode).
		Scan(&w.ID, &w.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert withdrawal: %w", err)
	}
	return nil
}

func (r *WithdrawalRepositoryImpl) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1`

	executor := r.getExecutor(tx...)
	w, err := scanWithdrawal(executor.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal: %w", err)
	}
	return w, nil
}

// GetForUpdate locks a withdrawal row for a state transition
func (r *WithdrawalRepositoryImpl) GetForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`

	w, err := scanWithdrawal(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to lock withdrawal: %w", err)
	}
	return w, nil
}

func (r *WithdrawalRepositoryImpl) Update(ctx context.Context, w *model.Withdrawal, tx pgx.Tx) error {
	query := `
        UPDATE withdrawals
        SET status = $1,
            tracking_code = $2,
            reference_number = $3,
            rejection_reason = $4,
            processed_by = $5,
            payment_id = $6,
            processed_at = $7,
            completed_at = $8
        WHERE id = $9`

	commandTag, err := tx.Exec(ctx, query,
		w.Status, w.TrackingCode, w.ReferenceNumber, w.RejectionReason,
		w.ProcessedBy, w.PaymentID, w.ProcessedAt, w.CompletedAt, w.ID)
	if err != nil {
		return fmt.Errorf("failed to update withdrawal: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrWithdrawalNotFound
	}
	return nil
}
