package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clash-arena/internal/model"
	"clash-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.PaymentRepository = (*PaymentRepositoryImpl)(nil)

// PaymentRepositoryImpl is the PostgreSQL implementation of PaymentRepository
type PaymentRepositoryImpl struct {
	*TxManager
}

func NewPaymentRepository(pool *pgxpool.Pool) repository.PaymentRepository {
	return &PaymentRepositoryImpl{
		TxManager: NewTxManager(pool),
	}
}

const paymentColumns = `id, transaction_id, user_id, type, amount, fee, final_amount, status, gateway,
        gateway_transaction_id, gateway_tracking_code, card_number, card_holder_name,
        tournament_id, description, retry_count, verify_attempts,
        created_at, updated_at, completed_at, expires_at`

func scanPayment(row pgx.Row) (*model.Payment, error) {
	p := &model.Payment{}
	err := row.Scan(&p.ID, &p.TransactionID, &p.UserID, &p.Type, &p.Amount, &p.Fee, &p.FinalAmount,
		&p.Status, &p.Gateway, &p.GatewayTransactionID, &p.GatewayTrackingCode,
		&p.CardNumber, &p.CardHolderName, &p.TournamentID, &p.Description,
		&p.RetryCount, &p.VerifyAttempts, &p.CreatedAt, &p.UpdatedAt, &p.CompletedAt, &p.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PaymentRepositoryImpl) Insert(ctx context.Context, p *model.Payment, tx pgx.Tx) error {
	query := `
        INSERT INTO payments (transaction_id, user_id, type, amount, fee, final_amount, status, gateway,
            gateway_transaction_id, gateway_tracking_code, tournament_id, description, retry_count, completed_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query,
		p.TransactionID, p.UserID, p.Type, p.Amount, p.Fee, p.FinalAmount, p.Status, p.Gateway,
		p.GatewayTransactionID, p.GatewayTrackingCode, p.TournamentID, p.Description,
		p.RetryCount, p.CompletedAt, p.ExpiresAt).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepositoryImpl) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	executor := r.getExecutor(tx...)
	p, err := scanPayment(executor.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepositoryImpl) GetByTransactionID(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1`

	executor := r.getExecutor(tx...)
	p, err := scanPayment(executor.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepositoryImpl) GetByGatewayTransactionID(ctx context.Context, gatewayTransactionID string) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE gateway_transaction_id = $1`

	p, err := scanPayment(r.pool.QueryRow(ctx, query, gatewayTransactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment by gateway reference: %w", err)
	}
	return p, nil
}

// GetForUpdate locks a payment row for a state transition
func (r *PaymentRepositoryImpl) GetForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE`

	p, err := scanPayment(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to lock payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepositoryImpl) Update(ctx context.Context, p *model.Payment, tx pgx.Tx) error {
	query := `
        UPDATE payments
        SET status = $1,
            gateway_transaction_id = $2,
            gateway_tracking_code = $3,
            card_number = $4,
            card_holder_name = $5,
            description = $6,
            retry_count = $7,
            completed_at = $8,
            expires_at = $9,
            updated_at = NOW()
        WHERE id = $10`

	commandTag, err := tx.Exec(ctx, query,
		p.Status, p.GatewayTransactionID, p.GatewayTrackingCode, p.CardNumber, p.CardHolderName,
		p.Description, p.RetryCount, p.CompletedAt, p.ExpiresAt, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []*model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// ListVerifying retrieves payments awaiting gateway verification
func (r *PaymentRepositoryImpl) ListVerifying(ctx context.Context, maxAttempts, limit int) ([]*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
        WHERE status = 'verifying' AND verify_attempts < $1
        ORDER BY created_at
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query verifying payments: %w", err)
	}
	defer rows.Close()

	var payments []*model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *PaymentRepositoryImpl) IncrementVerifyAttempts(ctx context.Context, id int64) error {
	query := `UPDATE payments SET verify_attempts = verify_attempts + 1, updated_at = NOW() WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to increment verify attempts: %w", err)
	}
	return nil
}

// ExpirePending flips pending payments past expiry to expired. The status
// filter keeps the sweep idempotent under re-runs and concurrency.
func (r *PaymentRepositoryImpl) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE payments
        SET status = 'expired', updated_at = NOW()
        WHERE status = 'pending' AND expires_at IS NOT NULL AND expires_at < $1`

	commandTag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire payments: %w", err)
	}
	return commandTag.RowsAffected(), nil
}

func (r *PaymentRepositoryImpl) HasCompletedEntryPayment(ctx context.Context, userID int64, tx ...pgx.Tx) (bool, error) {
	query := `SELECT EXISTS (
        SELECT 1 FROM payments WHERE user_id = $1 AND type = 'tournament_entry' AND status = 'completed')`

	var exists bool
	executor := r.getExecutor(tx...)
	if err := executor.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check entry payments: %w", err)
	}
	return exists, nil
}
