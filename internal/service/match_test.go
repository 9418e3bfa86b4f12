package service

import (
	"context"
	"testing"

	"clash-arena/internal/model"
	"clash-arena/internal/notify"
	mocks "clash-arena/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type matchServiceMocks struct {
	matchRepo       *mocks.MatchRepository
	participantRepo *mocks.ParticipantRepository
	tournamentRepo  *mocks.TournamentRepository
	dbManager       *mocks.DBManager
}

func newMatchServiceForTest(t *testing.T) (MatchService, *matchServiceMocks) {
	logger := zerolog.Nop()
	m := &matchServiceMocks{
		matchRepo:       mocks.NewMatchRepository(t),
		participantRepo: mocks.NewParticipantRepository(t),
		tournamentRepo:  mocks.NewTournamentRepository(t),
		dbManager:       mocks.NewDBManager(t),
	}
	svc := NewMatchService(m.matchRepo, m.participantRepo, m.tournamentRepo, m.dbManager, notify.NewLogSink(logger), logger)
	return svc, m
}

func ongoingMatch() *model.Match {
	return &model.Match{
		ID:           20,
		TournamentID: 5,
		MatchNumber:  1,
		Player1ID:    1,
		Player2ID:    2,
		BestOf:       3,
		Status:       model.MatchOngoing,
	}
}

func TestMatchCreate_HappyPath(t *testing.T) {
	ctx := context.Background()
	svc, m := newMatchServiceForTest(t)

	m.tournamentRepo.On("GetByID", ctx, int64(5)).Return(&model.Tournament{
		ID:     5,
		Status: model.TournamentOngoing,
	}, nil)
	passthroughTx(ctx, m.dbManager)
	m.matchRepo.On("Insert", ctx, mock.MatchedBy(func(match *model.Match) bool {
		return match.TournamentID == 5 &&
			match.Player1ID == 1 && match.Player2ID == 2 &&
			match.BestOf == 3 &&
			match.Status == model.MatchScheduled
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Match).ID = 20
	}).Return(nil)

	match, err := svc.Create(ctx, 5, 1, 1, 2, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(20), match.ID)
	assert.Equal(t, 3, match.BestOf)
}

func TestMatchCreate_SamePlayer(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMatchServiceForTest(t)

	match, err := svc.Create(ctx, 5, 1, 1, 1, 3)

	require.Error(t, err)
	assert.Nil(t, match)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestMatchCreate_EvenBestOf(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMatchServiceForTest(t)

	match, err := svc.Create(ctx, 5, 1, 1, 2, 4)

	require.Error(t, err)
	assert.Nil(t, match)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestMatchCreate_TournamentNotRunning(t *testing.T) {
	ctx := context.Background()
	svc, m := newMatchServiceForTest(t)

	m.tournamentRepo.On("GetByID", ctx, int64(5)).Return(&model.Tournament{
		ID:     5,
		Status: model.TournamentRegistration,
	}, nil)

	match, err := svc.Create(ctx, 5, 1, 1, 2, 3)

	require.Error(t, err)
	assert.Nil(t, match)
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestMatchStart(t *testing.T) {
	ctx := context.Background()
	svc, m := newMatchServiceForTest(t)

	match := ongoingMatch()
	match.Status = model.MatchScheduled

	passthroughTx(ctx, m.dbManager)
	m.matchRepo.On("GetForUpdate", ctx, int64(20), mock.Anything).Return(match, nil)
	m.matchRepo.On("Update", ctx, mock.MatchedBy(func(match *model.Match) bool {
		return match.Status == model.MatchOngoing && match.StartedAt != nil
	}), mock.Anything).Return(nil)

	err := svc.Start(ctx, 20)

	require.NoError(t, err)
}

func TestMatchStart_AlreadyOngoing(t *testing.T) {
	ctx := context.Background()
	svc, m := newMatchServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.matchRepo.On("GetForUpdate", ctx, int64(20), mock.Anything).Return(ongoingMatch(), nil)

	err := svc.Start(ctx, 20)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestRecordGameResult_IncrementOnly(t *testing.T) {
	ctx := context.Background()
	svc, m := newMatchServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.matchRepo.On("GetForUpdate", ctx, int64(20), mock.Anything).Return(ongoingMatch(), nil)
	m.matchRepo.On("Update", ctx, mock.MatchedBy(func(match *model.Match) bool {
		return match.Player1Wins == 1 && match.Status == model.MatchOngoing && match.WinnerID == nil
	}), mock.Anything).Return(nil)

	match, err := svc.RecordGameResult(ctx, 20, &model.GameResultRequest{WinnerID: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, match.Player1Wins)
	assert.Nil(t, match.WinnerID)
	m.participantRepo.AssertNotCalled(t, "IncrementStats", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordGameResult_CompletesMatch(t *testing.T) {
	ctx := context.Background()
	svc, m := newMatchServiceForTest(t)

	match := ongoingMatch()
	match.Player2Wins = 1

	passthroughTx(ctx, m.dbManager)
	m.matchRepo.On("GetForUpdate", ctx, int64(20), mock.Anything).Return(match, nil)
	m.participantRepo.On("IncrementStats", ctx, int64(5), int64(2), true, mock.Anything).Return(nil)
	m.participantRepo.On("IncrementStats", ctx, int64(5), int64(1), false, mock.Anything).Return(nil)
	m.matchRepo.On("Update", ctx, mock.MatchedBy(func(match *model.Match) bool {
		return match.Status == model.MatchCompleted &&
			match.WinnerID != nil && *match.WinnerID == 2 &&
			match.Player2Wins == 2
	}), mock.Anything).Return(nil)

	result, err := svc.RecordGameResult(ctx, 20, &model.GameResultRequest{WinnerID: 2})

	require.NoError(t, err)
	require.NotNil(t, result.WinnerID)
	assert.Equal(t, int64(2), *result.WinnerID)
}

func TestRecordGameResult_NonPlayer(t *testing.T) {
	ctx := context.Background()
	svc, m := newMatchServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.matchRepo.On("GetForUpdate", ctx, int64(20), mock.Anything).Return(ongoingMatch(), nil)

	result, err := svc.RecordGameResult(ctx, 20, &model.GameResultRequest{WinnerID: 99})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestIngestBattleResult_SettledMatchDropped(t *testing.T) {
	ctx := context.Background()
	svc, m := newMatchServiceForTest(t)

	match := ongoingMatch()
	match.Status = model.MatchCompleted

	passthroughTx(ctx, m.dbManager)
	m.matchRepo.On("GetForUpdate", ctx, int64(20), mock.Anything).Return(match, nil)

	err := svc.IngestBattleResult(ctx, &model.BattleResult{MatchID: 20, WinnerID: 1})

	require.NoError(t, err)
}

func TestIngestBattleResult_UnknownMatchDropped(t *testing.T) {
	ctx := context.Background()
	svc, m := newMatchServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.matchRepo.On("GetForUpdate", ctx, int64(999), mock.Anything).Return(nil, model.ErrMatchNotFound)

	err := svc.IngestBattleResult(ctx, &model.BattleResult{MatchID: 999, WinnerID: 1})

	require.NoError(t, err)
}

func TestMatchCancel_Completed(t *testing.T) {
	ctx := context.Background()
	svc, m := newMatchServiceForTest(t)

	match := ongoingMatch()
	match.Status = model.MatchCompleted

	passthroughTx(ctx, m.dbManager)
	m.matchRepo.On("GetForUpdate", ctx, int64(20), mock.Anything).Return(match, nil)

	err := svc.Cancel(ctx, 20, "no show")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestMatchCancel_Ongoing(t *testing.T) {
	ctx := context.Background()
	svc, m := newMatchServiceForTest(t)

	passthroughTx(ctx, m.dbManager)
	m.matchRepo.On("GetForUpdate", ctx, int64(20), mock.Anything).Return(ongoingMatch(), nil)
	m.matchRepo.On("Update", ctx, mock.MatchedBy(func(match *model.Match) bool {
		return match.Status == model.MatchCancelled
	}), mock.Anything).Return(nil)

	err := svc.Cancel(ctx, 20, "no show")

	require.NoError(t, err)
}
