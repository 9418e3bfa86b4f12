package service

import (
	"context"

	"clash-arena/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// RecordParams describes one wallet movement for the ledger.
type RecordParams struct {
	UserID       int64
	Type         model.TransactionType
	Amount       decimal.Decimal
	Description  string
	PaymentID    *int64
	TournamentID *int64
}

// LedgerService owns the wallet balance and the append-only transaction log.
// It is the only component allowed to mutate balances.
type LedgerService interface {
	// Record moves money inside the caller's database transaction: it locks
	// the user row, checks the balance, appends a ledger entry and persists
	// the new balance as one atomic unit. Debits beyond the balance fail
	// with model.ErrInsufficientFunds.
	Record(ctx context.Context, tx pgx.Tx, params RecordParams) (*model.Transaction, error)

	GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error)
	ListTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)
}

// PaymentService drives the payment state machine.
type PaymentService interface {
	// Deposit creates a pending deposit payment and initiates it with the gateway.
	Deposit(ctx context.Context, userID int64, req *model.DepositRequest) (*model.PaymentResponse, error)

	// HandleGatewayCallback processes a gateway callback and verifies the
	// payment. Returns whether the payment ended up completed.
	HandleGatewayCallback(ctx context.Context, req *model.GatewayCallbackRequest) (bool, error)

	// MarkCompleted transitions a payment to completed at most once. A second
	// call returns (false, nil); the wallet is credited exactly once.
	MarkCompleted(ctx context.Context, paymentID int64, trackingCode string, card *model.CardInfo) (bool, error)

	// MarkFailed records a failure. Completed or refunded payments are left
	// untouched and (false, nil) is returned.
	MarkFailed(ctx context.Context, paymentID int64, reason string) (bool, error)

	// Refund reverses a completed payment and writes a refund audit record.
	Refund(ctx context.Context, transactionID, reason string, adminID *int64) error

	// Retry resets a failed or expired payment to pending with a fresh expiry.
	Retry(ctx context.Context, userID int64, transactionID string) (*model.PaymentResponse, error)

	// Cancel is the user-initiated cooperative cancel of a pending payment.
	Cancel(ctx context.Context, userID int64, transactionID, reason string) error

	Get(ctx context.Context, userID int64, transactionID string) (*model.Payment, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Payment, error)
}

// WithdrawalService drives withdrawal requests from wallet to bank account.
type WithdrawalService interface {
	Request(ctx context.Context, userID int64, req *model.WithdrawalRequest) (*model.Withdrawal, error)
	Approve(ctx context.Context, withdrawalID, adminID int64, trackingCode string) error
	Reject(ctx context.Context, withdrawalID, adminID int64, reason string) error
	Complete(ctx context.Context, withdrawalID int64, referenceNumber string) error
	Cancel(ctx context.Context, withdrawalID int64, reason string) error
	Get(ctx context.Context, withdrawalID int64) (*model.Withdrawal, error)
}

// CouponService validates and redeems discount coupons.
type CouponService interface {
	Validate(ctx context.Context, userID int64, req *model.CouponValidateRequest) (*model.CouponValidateResponse, error)

	// Check runs all usability rules inside the caller's transaction and
	// returns the coupon with its discount for the amount. Unusable coupons
	// return an error wrapping model.ErrCouponNotApplicable.
	Check(ctx context.Context, tx pgx.Tx, code string, userID, tournamentID int64, amount decimal.Decimal) (*model.Coupon, decimal.Decimal, error)

	// Redeem atomically bumps the usage counter and records one usage row
	// for the payment. Must follow a successful Check in the same transaction.
	Redeem(ctx context.Context, tx pgx.Tx, couponID, userID, paymentID int64, discount decimal.Decimal) error
}

// TournamentService drives the tournament lifecycle and participant transitions.
type TournamentService interface {
	Create(ctx context.Context, req *model.CreateTournamentRequest) (*model.Tournament, error)
	Get(ctx context.Context, tournamentID int64) (*model.Tournament, error)

	// Lifecycle flips, monotonic: draft→pending→registration→ready→ongoing→finished.
	Publish(ctx context.Context, tournamentID int64) error
	OpenRegistration(ctx context.Context, tournamentID int64) error
	MarkReady(ctx context.Context, tournamentID int64) error
	Start(ctx context.Context, tournamentID int64) error
	Finish(ctx context.Context, tournamentID int64) error

	// Cancel aborts any non-terminal tournament and refunds every confirmed
	// participant; one participant's refund failing does not stop the rest.
	Cancel(ctx context.Context, tournamentID int64, reason string) error

	// Register creates a pending participant plus an entry payment (free
	// tournaments confirm immediately with no payment).
	Register(ctx context.Context, tournamentID, userID int64, req *model.RegisterRequest) (*model.RegistrationResponse, error)

	// DistributePrizes pays out placements from the post-commission pool.
	// Idempotent: each participant is credited at most once.
	DistributePrizes(ctx context.Context, tournamentID int64) error

	DisqualifyParticipant(ctx context.Context, participantID int64, reason string) error
	RefundParticipant(ctx context.Context, participantID int64, reason string) error

	Invite(ctx context.Context, tournamentID, invitedUserID int64, invitedBy *int64, message string) (*model.Invitation, error)
	RespondInvitation(ctx context.Context, code string, accept bool) error
}

// MatchService drives best-of-N matches and the stats they feed.
type MatchService interface {
	Create(ctx context.Context, tournamentID int64, matchNumber int, player1, player2 int64, bestOf int) (*model.Match, error)
	Start(ctx context.Context, matchID int64) error

	// RecordGameResult records one game; reaching (best_of/2)+1 wins
	// completes the match and updates participant stats.
	RecordGameResult(ctx context.Context, matchID int64, req *model.GameResultRequest) (*model.Match, error)

	// IngestBattleResult consumes a battle-log tuple from the external game
	// API. Stats only, never money.
	IngestBattleResult(ctx context.Context, result *model.BattleResult) error

	Cancel(ctx context.Context, matchID int64, reason string) error
}

// MaintenanceService runs the periodic expiry sweeps. All sweeps are
// filter-based updates, safe to re-run and to overlap with live requests.
type MaintenanceService interface {
	ExpirePayments(ctx context.Context) (int64, error)
	ExpireCoupons(ctx context.Context) (int64, error)
	ExpireInvitations(ctx context.Context) (int64, error)
}

// VerificationService is the background side of gateway verification.
type VerificationService interface {
	// ProcessPendingVerifications polls payments stuck in verifying and
	// settles them against the gateway. Transient gateway errors leave the
	// payment for the next tick, bounded by the attempt cap.
	ProcessPendingVerifications(ctx context.Context) error
}
