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
var _ repository.InvitationRepository = (*InvitationRepositoryImpl)(nil)

// InvitationRepositoryImpl is the PostgreSQL implementation of InvitationRepository
type InvitationRepositoryImpl struct {
	*TxManager
}

func NewInvitationRepository(pool *pgxpool.Pool) repository.InvitationRepository {
	return &InvitationRepositoryImpl{
		TxManager: NewTxManager(pool),
	}
}

func (r *InvitationRepositoryImpl) Insert(ctx context.Context, inv *model.Invitation, tx pgx.Tx) error {
	query := `
        INSERT INTO invitations (tournament_id, invited_user_id, invited_by, code, status, message, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query,
		inv.TournamentID, inv.InvitedUser, inv.InvitedBy, inv.Code, inv.Status, inv.Message, inv.ExpiresAt).
		Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert invitation: %w", err)
	}
	return nil
}

func (r *InvitationRepositoryImpl) GetByCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.Invitation, error) {
	query := `
        SELECT id, tournament_id, invited_user_id, invited_by, code, status, message, expires_at, created_at, responded_at
        FROM invitations WHERE code = $1`

	inv := &model.Invitation{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, code).Scan(
		&inv.ID, &inv.TournamentID, &inv.InvitedUser, &inv.InvitedBy, &inv.Code,
		&inv.Status, &inv.Message, &inv.ExpiresAt, &inv.CreatedAt, &inv.RespondedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return inv, nil
}

// UpdateStatus flips status from → to and stamps the response time
func (r *InvitationRepositoryImpl) UpdateStatus(ctx context.Context, id int64, from, to model.InvitationStatus, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE invitations
        SET status = $1, responded_at = NOW()
        WHERE id = $2 AND status = $3`

	commandTag, err := tx.Exec(ctx, query, to, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update invitation status: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// ExpireOld marks pending invitations past expiry as expired
func (r *InvitationRepositoryImpl) ExpireOld(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE invitations SET status = 'expired' WHERE status = 'pending' AND expires_at < $1`

	commandTag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire invitations: %w", err)
	}
	return commandTag.RowsAffected(), nil
}
