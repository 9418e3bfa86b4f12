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
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TournamentRepository = (*TournamentRepositoryImpl)(nil)

// TournamentRepositoryImpl is the PostgreSQL implementation of TournamentRepository
type TournamentRepositoryImpl struct {
	*TxManager
}

func NewTournamentRepository(pool *pgxpool.Pool) repository.TournamentRepository {
	return &TournamentRepositoryImpl{
		TxManager: NewTxManager(pool),
	}
}

const tournamentColumns = `id, title, status, pricing, max_participants, entry_fee, prize_pool,
        platform_commission, best_of, registration_start, registration_end, start_date, end_date,
        total_participants, created_by, created_at, updated_at`

func scanTournament(row pgx.Row) (*model.Tournament, error) {
	t := &model.Tournament{}
	err := row.Scan(&t.ID, &t.Title, &t.Status, &t.Pricing, &t.MaxParticipants, &t.EntryFee, &t.PrizePool,
		&t.PlatformCommission, &t.BestOf, &t.RegistrationStart, &t.RegistrationEnd, &t.StartDate, &t.EndDate,
		&t.TotalParticipants, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TournamentRepositoryImpl) Insert(ctx context.Context, t *model.Tournament) error {
	query := `
        INSERT INTO tournaments (title, status, pricing, max_participants, entry_fee, prize_pool,
            platform_commission, best_of, registration_start, registration_end, start_date, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		t.Title, t.Status, t.Pricing, t.MaxParticipants, t.EntryFee, t.PrizePool,
		t.PlatformCommission, t.BestOf, t.RegistrationStart, t.RegistrationEnd, t.StartDate, t.CreatedBy).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert tournament: %w", err)
	}
	return nil
}

func (r *TournamentRepositoryImpl) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`

	executor := r.getExecutor(tx...)
	t, err := scanTournament(executor.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return t, nil
}

// GetForUpdate locks a tournament row for a lifecycle transition
func (r *TournamentRepositoryImpl) GetForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1 FOR UPDATE`

	t, err := scanTournament(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to lock tournament: %w", err)
	}
	return t, nil
}

// UpdateStatus flips status from → to. The WHERE clause keeps transitions
// monotonic under concurrent requests; callers check the returned bool.
func (r *TournamentRepositoryImpl) UpdateStatus(ctx context.Context, id int64, from, to model.TournamentStatus, tx pgx.Tx) (bool, error) {
	query := `UPDATE tournaments SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`

	commandTag, err := tx.Exec(ctx, query, to, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update tournament status: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

func (r *TournamentRepositoryImpl) SetFinished(ctx context.Context, id int64, endDate time.Time, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE tournaments
        SET status = 'finished', end_date = $1, updated_at = NOW()
        WHERE id = $2 AND status = 'ongoing'`

	commandTag, err := tx.Exec(ctx, query, endDate, id)
	if err != nil {
		return false, fmt.Errorf("failed to finish tournament: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// UpdatePrizePool persists the recomputed pool; pure overwrite, safe to repeat
func (r *TournamentRepositoryImpl) UpdatePrizePool(ctx context.Context, id int64, pool decimal.Decimal, confirmed int, tx pgx.Tx) error {
	query := `UPDATE tournaments SET prize_pool = $1, total_participants = $2, updated_at = NOW() WHERE id = $3`

	commandTag, err := tx.Exec(ctx, query, pool, confirmed, id)
	if err != nil {
		return fmt.Errorf("failed to update prize pool: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrTournamentNotFound
	}
	return nil
}
