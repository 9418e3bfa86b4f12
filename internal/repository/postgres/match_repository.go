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
var _ repository.MatchRepository = (*MatchRepositoryImpl)(nil)

// MatchRepositoryImpl is the PostgreSQL implementation of MatchRepository
type MatchRepositoryImpl struct {
	*TxManager
}

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &MatchRepositoryImpl{
		TxManager: NewTxManager(pool),
	}
}

const matchColumns = `id, tournament_id, match_number, player1_id, player2_id, best_of,
        player1_wins, player2_wins, winner_id, status, scheduled_time, started_at, completed_at,
        created_at, updated_at`

func scanMatch(row pgx.Row) (*model.Match, error) {
	m := &model.Match{}
	err := row.Scan(&m.ID, &m.TournamentID, &m.MatchNumber, &m.Player1ID, &m.Player2ID, &m.BestOf,
		&m.Player1Wins, &m.Player2Wins, &m.WinnerID, &m.Status, &m.ScheduledTime, &m.StartedAt,
		&m.CompletedAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MatchRepositoryImpl) Insert(ctx context.Context, m *model.Match, tx pgx.Tx) error {
	query := `
        INSERT INTO matches (tournament_id, match_number, player1_id, player2_id, best_of, status, scheduled_time)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query,
		m.TournamentID, m.MatchNumber, m.Player1ID, m.Player2ID, m.BestOf, m.Status, m.ScheduledTime).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

func (r *MatchRepositoryImpl) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	executor := r.getExecutor(tx...)
	m, err := scanMatch(executor.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

// GetForUpdate locks a match row; win counters are only ever bumped under this lock
func (r *MatchRepositoryImpl) GetForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1 FOR UPDATE`

	m, err := scanMatch(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to lock match: %w", err)
	}
	return m, nil
}

func (r *MatchRepositoryImpl) Update(ctx context.Context, m *model.Match, tx pgx.Tx) error {
	query := `
        UPDATE matches
        SET player1_wins = $1, player2_wins = $2, winner_id = $3, status = $4,
            started_at = $5, completed_at = $6, updated_at = NOW()
        WHERE id = $7`

	commandTag, err := tx.Exec(ctx, query,
		m.Player1Wins, m.Player2Wins, m.WinnerID, m.Status, m.StartedAt, m.CompletedAt, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrMatchNotFound
	}
	return nil
}
