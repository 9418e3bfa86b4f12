package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clash-arena/internal/model"
	"clash-arena/internal/notify"
	"clash-arena/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type MatchServiceImpl struct {
	matchRepo       repository.MatchRepository
	participantRepo repository.ParticipantRepository
	tournamentRepo  repository.TournamentRepository
	dbManager       repository.DBManager
	sink            notify.Sink
	logger          zerolog.Logger
}

var _ MatchService = (*MatchServiceImpl)(nil)

func NewMatchService(
	matchRepo repository.MatchRepository,
	participantRepo repository.ParticipantRepository,
	tournamentRepo repository.TournamentRepository,
	dbManager repository.DBManager,
	sink notify.Sink,
	logger zerolog.Logger,
) MatchService {
	return &MatchServiceImpl{
		matchRepo:       matchRepo,
		participantRepo: participantRepo,
		tournamentRepo:  tournamentRepo,
		dbManager:       dbManager,
		sink:            sink,
		logger:          logger,
	}
}

func (s *MatchServiceImpl) Create(ctx context.Context, tournamentID int64, matchNumber int, player1, player2 int64, bestOf int) (*model.Match, error) {
	if player1 == player2 {
		return nil, fmt.Errorf("%w: a match needs two distinct players", model.ErrValidation)
	}
	if bestOf <= 0 {
		bestOf = 3
	}
	if bestOf%2 == 0 {
		return nil, fmt.Errorf("%w: best-of must be odd", model.ErrValidation)
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if tournament.Status != model.TournamentOngoing && tournament.Status != model.TournamentReady {
		return nil, fmt.Errorf("%w: matches are created for ready or ongoing tournaments, got %s", model.ErrInvalidStateTransition, tournament.Status)
	}

	match := &model.Match{
		TournamentID: tournamentID,
		MatchNumber:  matchNumber,
		Player1ID:    player1,
		Player2ID:    player2,
		BestOf:       bestOf,
		Status:       model.MatchScheduled,
	}
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		return s.matchRepo.Insert(ctx, match, tx)
	})
	if err != nil {
		return nil, fmt.Errorf("insert match: %w", err)
	}

	s.logger.Info().
		Int64("match_id", match.ID).
		Int64("tournament_id", tournamentID).
		Int("match_number", matchNumber).
		Msg("match created")
	return match, nil
}

func (s *MatchServiceImpl) Start(ctx context.Context, matchID int64) error {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		m, err := s.matchRepo.GetForUpdate(ctx, matchID, tx)
		if err != nil {
			return fmt.Errorf("get match for update: %w", err)
		}
		if m.Status != model.MatchScheduled && m.Status != model.MatchReady {
			return fmt.Errorf("%w: cannot start match in status %s", model.ErrInvalidStateTransition, m.Status)
		}

		now := time.Now()
		m.Status = model.MatchOngoing
		m.StartedAt = &now
		return s.matchRepo.Update(ctx, m, tx)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("match_id", matchID).Msg("match started")
	return nil
}

func (s *MatchServiceImpl) RecordGameResult(ctx context.Context, matchID int64, req *model.GameResultRequest) (*model.Match, error) {
	var (
		match     *model.Match
		completed bool
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		m, err := s.matchRepo.GetForUpdate(ctx, matchID, tx)
		if err != nil {
			return fmt.Errorf("get match for update: %w", err)
		}
		if m.Status != model.MatchOngoing && m.Status != model.MatchWaitingResult {
			return fmt.Errorf("%w: cannot record a game for match in status %s", model.ErrInvalidStateTransition, m.Status)
		}
		if !m.HasPlayer(req.WinnerID) {
			return fmt.Errorf("%w: user %d does not play in match %d", model.ErrValidation, req.WinnerID, matchID)
		}

		if req.WinnerID == m.Player1ID {
			m.Player1Wins++
		} else {
			m.Player2Wins++
		}

		needed := m.WinsNeeded()
		if m.Player1Wins >= needed || m.Player2Wins >= needed {
			winner := m.Player1ID
			loser := m.Player2ID
			if m.Player2Wins >= needed {
				winner, loser = m.Player2ID, m.Player1ID
			}

			now := time.Now()
			m.Status = model.MatchCompleted
			m.WinnerID = &winner
			m.CompletedAt = &now

			if err := s.participantRepo.IncrementStats(ctx, m.TournamentID, winner, true, tx); err != nil {
				return fmt.Errorf("update winner stats: %w", err)
			}
			if err := s.participantRepo.IncrementStats(ctx, m.TournamentID, loser, false, tx); err != nil {
				return fmt.Errorf("update loser stats: %w", err)
			}
			completed = true
		}

		if err := s.matchRepo.Update(ctx, m, tx); err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		match = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("match_id", matchID).
		Int64("winner_id", req.WinnerID).
		Int("player1_wins", match.Player1Wins).
		Int("player2_wins", match.Player2Wins).
		Bool("completed", completed).
		Msg("game result recorded")

	if completed && match.WinnerID != nil {
		s.sink.Notify(ctx, notify.Event{
			UserID:   *match.WinnerID,
			Type:     "match_won",
			Title:    "Match won",
			Message:  fmt.Sprintf("You won match %d", match.MatchNumber),
			Priority: model.PriorityNormal,
			Metadata: map[string]string{"match_id": fmt.Sprintf("%d", match.ID)},
		})
	}
	return match, nil
}

// IngestBattleResult consumes one battle-log tuple. Duplicates and late
// arrivals for settled matches are dropped, not errors: the upstream feed
// replays freely.
func (s *MatchServiceImpl) IngestBattleResult(ctx context.Context, result *model.BattleResult) error {
	_, err := s.RecordGameResult(ctx, result.MatchID, &model.GameResultRequest{
		WinnerID:   result.WinnerID,
		Crowns:     result.Crowns,
		BattleTime: result.BattleTime,
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidStateTransition) || errors.Is(err, model.ErrMatchNotFound) {
			s.logger.Debug().Err(err).
				Int64("match_id", result.MatchID).
				Msg("battle result dropped")
			return nil
		}
		return err
	}
	return nil
}

func (s *MatchServiceImpl) Cancel(ctx context.Context, matchID int64, reason string) error {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		m, err := s.matchRepo.GetForUpdate(ctx, matchID, tx)
		if err != nil {
			return fmt.Errorf("get match for update: %w", err)
		}
		if m.Status == model.MatchCompleted || m.Status == model.MatchCancelled {
			return fmt.Errorf("%w: match is already %s", model.ErrInvalidStateTransition, m.Status)
		}

		m.Status = model.MatchCancelled
		return s.matchRepo.Update(ctx, m, tx)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("match_id", matchID).Str("reason", reason).Msg("match cancelled")
	return nil
}
