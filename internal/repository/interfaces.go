package repository

import (
	"context"
	"time"

	"clash-arena/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// UserRepository defines operations for user/wallet balance management
type UserRepository interface {
	// GetUserForUpdate retrieves a user with row-level lock (must be in transaction)
	GetUserForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.User, error)

	// GetBalance retrieves the current wallet balance for a user (read-only)
	GetBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error)

	// UpdateBalance updates the wallet balance
	UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal, tx pgx.Tx) error
}

// TransactionRepository manages the append-only wallet ledger
type TransactionRepository interface {
	// Insert appends a ledger entry (must be in the balance-updating transaction)
	Insert(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	// ListByUser retrieves paginated ledger entries for a user, newest first
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)

	// SumByType returns the total credited or debited amount for a user
	SumByType(ctx context.Context, userID int64, transType model.TransactionType) (decimal.Decimal, error)
}

// PaymentRepository defines operations for payment records
type PaymentRepository interface {
	Insert(ctx context.Context, p *model.Payment, tx pgx.Tx) error

	GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Payment, error)

	GetByTransactionID(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Payment, error)

	GetByGatewayTransactionID(ctx context.Context, gatewayTransactionID string) (*model.Payment, error)

	// GetForUpdate locks a payment row for a state transition
	GetForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Payment, error)

	// Update persists mutable payment fields (status, tracking, card, timestamps)
	Update(ctx context.Context, p *model.Payment, tx pgx.Tx) error

	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Payment, error)

	// ListVerifying retrieves payments awaiting gateway verification
	ListVerifying(ctx context.Context, maxAttempts, limit int) ([]*model.Payment, error)

	IncrementVerifyAttempts(ctx context.Context, id int64) error

	// ExpirePending flips pending payments past their expiry to expired.
	// Filter-based, safe to re-run.
	ExpirePending(ctx context.Context, now time.Time) (int64, error)

	// HasCompletedEntryPayment reports whether the user ever completed a
	// tournament entry payment (first-purchase coupon check)
	HasCompletedEntryPayment(ctx context.Context, userID int64, tx ...pgx.Tx) (bool, error)
}

// WithdrawalRepository defines operations for withdrawal requests
type WithdrawalRepository interface {
	Insert(ctx context.Context, w *model.Withdrawal, tx pgx.Tx) error
	GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Withdrawal, error)
	GetForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Withdrawal, error)
	Update(ctx context.Context, w *model.Withdrawal, tx pgx.Tx) error
}

// CouponRepository defines operations for coupons and their usage records
type CouponRepository interface {
	GetByCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.Coupon, error)

	// IncrementUses bumps current_uses if the global cap allows it; reports
	// whether a row was updated
	IncrementUses(ctx context.Context, couponID int64, tx pgx.Tx) (bool, error)

	// InsertUsage records one usage keyed by payment; a duplicate payment
	// returns model.ErrAlreadyProcessed
	InsertUsage(ctx context.Context, usage *model.CouponUsage, tx pgx.Tx) error

	CountUsagesByUser(ctx context.Context, couponID, userID int64, tx ...pgx.Tx) (int, error)

	// ExpireOld marks active coupons past their validity window as expired
	ExpireOld(ctx context.Context, now time.Time) (int64, error)
}

// TournamentRepository defines operations for tournaments
type TournamentRepository interface {
	Insert(ctx context.Context, t *model.Tournament) error
	GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Tournament, error)
	GetForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Tournament, error)

	// UpdateStatus flips status from → to; reports whether a row changed
	UpdateStatus(ctx context.Context, id int64, from, to model.TournamentStatus, tx pgx.Tx) (bool, error)

	SetFinished(ctx context.Context, id int64, endDate time.Time, tx pgx.Tx) (bool, error)

	// UpdatePrizePool persists the recomputed pool and confirmed count
	UpdatePrizePool(ctx context.Context, id int64, pool decimal.Decimal, confirmed int, tx pgx.Tx) error
}

// ParticipantRepository defines operations for tournament participants
type ParticipantRepository interface {
	// Insert creates a participant; a duplicate (tournament, user) pair
	// returns model.ErrAlreadyRegistered
	Insert(ctx context.Context, p *model.Participant, tx pgx.Tx) error

	GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Participant, error)
	GetForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Participant, error)
	GetByPayment(ctx context.Context, paymentID int64, tx ...pgx.Tx) (*model.Participant, error)

	CountConfirmed(ctx context.Context, tournamentID int64, tx ...pgx.Tx) (int, error)
	ListConfirmed(ctx context.Context, tournamentID int64) ([]*model.Participant, error)

	// ListRanked returns confirmed participants ordered for prize placement
	ListRanked(ctx context.Context, tournamentID int64, limit int, tx ...pgx.Tx) ([]*model.Participant, error)

	// UpdateStatus flips status from → to; reports whether a row changed
	UpdateStatus(ctx context.Context, id int64, from, to model.ParticipantStatus, reason string, tx pgx.Tx) (bool, error)

	// SetPrize assigns placement and prize exactly once, guarded by prize_won = 0
	SetPrize(ctx context.Context, id int64, placement int, prize decimal.Decimal, tx pgx.Tx) (bool, error)

	// IncrementStats bumps matches_played (and matches_won for the winner)
	IncrementStats(ctx context.Context, tournamentID, userID int64, won bool, tx pgx.Tx) error
}

// InvitationRepository defines operations for tournament invitations
type InvitationRepository interface {
	Insert(ctx context.Context, inv *model.Invitation, tx pgx.Tx) error
	GetByCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.Invitation, error)

	// UpdateStatus flips status from → to; reports whether a row changed
	UpdateStatus(ctx context.Context, id int64, from, to model.InvitationStatus, tx pgx.Tx) (bool, error)

	// ExpireOld marks pending invitations past expiry as expired
	ExpireOld(ctx context.Context, now time.Time) (int64, error)
}

// MatchRepository defines operations for matches
type MatchRepository interface {
	Insert(ctx context.Context, m *model.Match, tx pgx.Tx) error
	GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Match, error)
	GetForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Match, error)
	Update(ctx context.Context, m *model.Match, tx pgx.Tx) error
}
