package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clash-arena/internal/model"
	"clash-arena/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.CouponRepository = (*CouponRepositoryImpl)(nil)

// CouponRepositoryImpl is the PostgreSQL implementation of CouponRepository
type CouponRepositoryImpl struct {
	*TxManager
}

func NewCouponRepository(pool *pgxpool.Pool) repository.CouponRepository {
	return &CouponRepositoryImpl{
		TxManager: NewTxManager(pool),
	}
}

func (r *CouponRepositoryImpl) GetByCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.Coupon, error) {
	query := `
        SELECT id, code, discount_type, discount_value, max_discount, min_purchase,
               max_uses, max_uses_per_user, current_uses, valid_from, valid_until,
               tournament_ids, allowed_user_ids, first_purchase_only, status, created_by, created_at, updated_at
        FROM coupons WHERE code = $1`

	c := &model.Coupon{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, code).Scan(
		&c.ID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.MaxDiscount, &c.MinPurchase,
		&c.MaxUses, &c.MaxUsesPerUser, &c.CurrentUses, &c.ValidFrom, &c.ValidUntil,
		&c.TournamentIDs, &c.AllowedUserIDs, &c.FirstPurchaseOnly, &c.Status, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	return c, nil
}

// IncrementUses bumps current_uses only while the global cap allows it.
// The WHERE clause is the guard; callers check the returned bool.
func (r *CouponRepositoryImpl) IncrementUses(ctx context.Context, couponID int64, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE coupons
        SET current_uses = current_uses + 1, updated_at = NOW()
        WHERE id = $1 AND status = 'active' AND (max_uses = 0 OR current_uses < max_uses)`

	commandTag, err := tx.Exec(ctx, query, couponID)
	if err != nil {
		return false, fmt.Errorf("failed to increment coupon uses: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// InsertUsage records one usage keyed by payment. The unique constraint on
// payment_id turns a double-application race into ErrAlreadyProcessed.
func (r *CouponRepositoryImpl) InsertUsage(ctx context.Context, usage *model.CouponUsage, tx pgx.Tx) error {
	query := `
        INSERT INTO coupon_usages (coupon_id, user_id, payment_id, discount_amount)
        VALUES ($1, $2, $3, $4)
        RETURNING id, used_at`

	err := tx.QueryRow(ctx, query, usage.CouponID, usage.UserID, usage.PaymentID, usage.DiscountAmount).
		Scan(&usage.ID, &usage.UsedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrAlreadyProcessed
		}
		return fmt.Errorf("failed to insert coupon usage: %w", err)
	}
	return nil
}

func (r *CouponRepositoryImpl) CountUsagesByUser(ctx context.Context, couponID, userID int64, tx ...pgx.Tx) (int, error) {
	query := `SELECT COUNT(*) FROM coupon_usages WHERE coupon_id = $1 AND user_id = $2`

	var count int
	executor := r.getExecutor(tx...)
	if err := executor.QueryRow(ctx, query, couponID, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count coupon usages: %w", err)
	}
	return count, nil
}

// ExpireOld marks active coupons past their validity window as expired
func (r *CouponRepositoryImpl) ExpireOld(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE coupons SET status = 'expired', updated_at = NOW() WHERE status = 'active' AND valid_until < $1`

	commandTag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire coupons: %w", err)
	}
	return commandTag.RowsAffected(), nil
}
