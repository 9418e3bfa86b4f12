package postgres

import (
	"context"
	"errors"
	"fmt"

	"clash-arena/internal/model"
	"clash-arena/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.ParticipantRepository = (*ParticipantRepositoryImpl)(nil)

// ParticipantRepositoryImpl is the PostgreSQL implementation of ParticipantRepository
type ParticipantRepositoryImpl struct {
	*TxManager
}

func NewParticipantRepository(pool *pgxpool.Pool) repository.ParticipantRepository {
	return &ParticipantRepositoryImpl{
		TxManager: NewTxManager(pool),
	}
}

const participantColumns = `id, tournament_id, user_id, status, placement, prize_won, payment_id,
        matches_played, matches_won, disqualification_reason, joined_at`

func scanParticipant(row pgx.Row) (*model.Participant, error) {
	p := &model.Participant{}
	err := row.Scan(&p.ID, &p.TournamentID, &p.UserID, &p.Status, &p.Placement, &p.PrizeWon,
		&p.PaymentID, &p.MatchesPlayed, &p.MatchesWon, &p.DisqualificationReason, &p.JoinedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Insert creates a participant. The unique (tournament_id, user_id) pair
// turns a concurrent double registration into ErrAlreadyRegistered.
func (r *ParticipantRepositoryImpl) Insert(ctx context.Context, p *model.Participant, tx pgx.Tx) error {
	query := `
        INSERT INTO participants (tournament_id, user_id, status, payment_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, joined_at`

	err := tx.QueryRow(ctx, query, p.TournamentID, p.UserID, p.Status, p.PaymentID).
		Scan(&p.ID, &p.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrAlreadyRegistered
		}
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

func (r *ParticipantRepositoryImpl) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`

	executor := r.getExecutor(tx...)
	p, err := scanParticipant(executor.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

// GetForUpdate locks a participant row for a state transition
func (r *ParticipantRepositoryImpl) GetForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1 FOR UPDATE`

	p, err := scanParticipant(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to lock participant: %w", err)
	}
	return p, nil
}

func (r *ParticipantRepositoryImpl) GetByPayment(ctx context.Context, paymentID int64, tx ...pgx.Tx) (*model.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE payment_id = $1`

	executor := r.getExecutor(tx...)
	p, err := scanParticipant(executor.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant by payment: %w", err)
	}
	return p, nil
}

func (r *ParticipantRepositoryImpl) CountConfirmed(ctx context.Context, tournamentID int64, tx ...pgx.Tx) (int, error) {
	query := `SELECT COUNT(*) FROM participants WHERE tournament_id = $1 AND status = 'confirmed'`

	var count int
	executor := r.getExecutor(tx...)
	if err := executor.QueryRow(ctx, query, tournamentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count confirmed participants: %w", err)
	}
	return count, nil
}

func (r *ParticipantRepositoryImpl) ListConfirmed(ctx context.Context, tournamentID int64) ([]*model.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants
        WHERE tournament_id = $1 AND status = 'confirmed'
        ORDER BY joined_at`

	return r.list(ctx, query, tournamentID)
}

// ListRanked orders confirmed participants for prize placement: most match
// wins first, earlier registration breaking ties.
func (r *ParticipantRepositoryImpl) ListRanked(ctx context.Context, tournamentID int64, limit int, tx ...pgx.Tx) ([]*model.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants
        WHERE tournament_id = $1 AND status = 'confirmed'
        ORDER BY matches_won DESC, joined_at
        LIMIT $2`

	executor := r.getExecutor(tx...)
	rows, err := executor.Query(ctx, query, tournamentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranked participants: %w", err)
	}
	defer rows.Close()
	return collectParticipants(rows)
}

func (r *ParticipantRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]*model.Participant, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()
	return collectParticipants(rows)
}

func collectParticipants(rows pgx.Rows) ([]*model.Participant, error) {
	var participants []*model.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// UpdateStatus flips status from → to; the status filter is the idempotency guard
func (r *ParticipantRepositoryImpl) UpdateStatus(ctx context.Context, id int64, from, to model.ParticipantStatus, reason string, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE participants
        SET status = $1, disqualification_reason = CASE WHEN $2 <> '' THEN $2 ELSE disqualification_reason END
        WHERE id = $3 AND status = $4`

	commandTag, err := tx.Exec(ctx, query, to, reason, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update participant status: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// SetPrize assigns placement and prize exactly once per participant
func (r *ParticipantRepositoryImpl) SetPrize(ctx context.Context, id int64, placement int, prize decimal.Decimal, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE participants
        SET placement = $1, prize_won = $2
        WHERE id = $3 AND prize_won = 0`

	commandTag, err := tx.Exec(ctx, query, placement, prize, id)
	if err != nil {
		return false, fmt.Errorf("failed to set participant prize: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

func (r *ParticipantRepositoryImpl) IncrementStats(ctx context.Context, tournamentID, userID int64, won bool, tx pgx.Tx) error {
	query := `
        UPDATE participants
        SET matches_played = matches_played + 1,
            matches_won = matches_won + CASE WHEN $1 THEN 1 ELSE 0 END
        WHERE tournament_id = $2 AND user_id = $3`

	if _, err := tx.Exec(ctx, query, won, tournamentID, userID); err != nil {
		return fmt.Errorf("failed to increment participant stats: %w", err)
	}
	return nil
}
