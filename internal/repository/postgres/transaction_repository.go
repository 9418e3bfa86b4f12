package postgres

import (
	"context"
	"fmt"

	"clash-arena/internal/model"
	"clash-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TransactionRepository = (*TransactionRepositoryImpl)(nil)

// TransactionRepositoryImpl is the PostgreSQL implementation of the wallet ledger
type TransactionRepositoryImpl struct {
	*TxManager
}

func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionRepository {
	return &TransactionRepositoryImpl{
		TxManager: NewTxManager(pool),
	}
}

// Insert appends a ledger entry. Entries are immutable once written.
func (r *TransactionRepositoryImpl) Insert(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO transactions (user_id, type, amount, balance_before, balance_after, description, payment_id, tournament_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query,
		trans.UserID, trans.Type, trans.Amount, trans.BalanceBefore, trans.BalanceAfter,
		trans.Description, trans.PaymentID, trans.TournamentID).
		Scan(&trans.ID, &trans.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

// ListByUser retrieves paginated ledger entries for a user
func (r *TransactionRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT id, user_id, type, amount, balance_before, balance_after, description, payment_id, tournament_id, created_at
        FROM transactions WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trans := &model.Transaction{}
		if err := rows.Scan(&trans.ID, &trans.UserID, &trans.Type, &trans.Amount, &trans.BalanceBefore,
			&trans.BalanceAfter, &trans.Description, &trans.PaymentID, &trans.TournamentID, &trans.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, nil
}

// SumByType returns the total credited or debited amount for a user
func (r *TransactionRepositoryImpl) SumByType(ctx context.Context, userID int64, transType model.TransactionType) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1 AND type = $2`

	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, userID, transType).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum ledger entries: %w", err)
	}
	return sum, nil
}
