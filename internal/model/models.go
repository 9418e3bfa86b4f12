package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID            int64           `json:"id"`
	Username      string          `json:"username"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Transaction is an immutable wallet ledger entry. Rows are inserted inside
// the same database transaction that updates the balance and are never
// mutated or deleted afterwards.
type Transaction struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Description   string          `json:"description"`
	PaymentID     *int64          `json:"payment_id,omitempty"`
	TournamentID  *int64          `json:"tournament_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Payment struct {
	ID            int64       `json:"id"`
	TransactionID string      `json:"transaction_id"` // public opaque UUID
	UserID        int64       `json:"user_id"`
	Type          PaymentType `json:"type"`

	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	FinalAmount decimal.Decimal `json:"final_amount"`

	Status  PaymentStatus `json:"status"`
	Gateway GatewayKind   `json:"gateway"`

	GatewayTransactionID *string `json:"gateway_transaction_id,omitempty"`
	GatewayTrackingCode  *string `json:"gateway_tracking_code,omitempty"`

	// Last 4 digits only.
	CardNumber     *string `json:"card_number,omitempty"`
	CardHolderName *string `json:"card_holder_name,omitempty"`

	TournamentID *int64 `json:"tournament_id,omitempty"`
	Description  string `json:"description"`

	RetryCount   int `json:"retry_count"`
	VerifyAttempts int `json:"verify_attempts"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// CanRetry reports whether a failed or expired payment may be reset to
// pending. Bounded by MaxPaymentRetries.
func (p *Payment) CanRetry() bool {
	return (p.Status == PaymentFailed || p.Status == PaymentExpired) && p.RetryCount < MaxPaymentRetries
}

const (
	// MaxPaymentRetries bounds failed/expired → pending resets.
	MaxPaymentRetries = 3

	// MaxVerifyAttempts bounds background gateway verification polls per payment.
	MaxVerifyAttempts = 5

	// PaymentExpiry is how long a pending payment stays payable.
	PaymentExpiry = 15 * time.Minute
)

type CardInfo struct {
	Last4Digits string `json:"last_4_digits"`
	HolderName  string `json:"holder_name"`
}

type Withdrawal struct {
	ID     int64           `json:"id"`
	UserID int64           `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`

	Fee         decimal.Decimal `json:"fee"`
	FinalAmount decimal.Decimal `json:"final_amount"`

	Status WithdrawalStatus `json:"status"`

	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankCardNumber    string `json:"bank_card_number"`
	AccountHolderName string `json:"account_holder_name"`
	ShebaNumber       string `json:"sheba_number"`

	TrackingCode    string `json:"tracking_code"`
	ReferenceNumber string `json:"reference_number"`
	RejectionReason string `json:"rejection_reason"`

	ProcessedBy *int64 `json:"processed_by,omitempty"`
	PaymentID   *int64 `json:"payment_id,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Coupon struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`

	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MaxDiscount   decimal.Decimal `json:"max_discount"` // percentage type only, zero = uncapped
	MinPurchase   decimal.Decimal `json:"min_purchase"`

	MaxUses        int `json:"max_uses"` // zero = unlimited
	MaxUsesPerUser int `json:"max_uses_per_user"`
	CurrentUses    int `json:"current_uses"`

	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`

	// Empty slices mean no restriction.
	TournamentIDs  []int64 `json:"tournament_ids,omitempty"`
	AllowedUserIDs []int64 `json:"allowed_user_ids,omitempty"`

	FirstPurchaseOnly bool `json:"first_purchase_only"`

	Status    CouponStatus `json:"status"`
	CreatedBy *int64       `json:"created_by,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// IsValid checks window, status and the global usage cap.
func (c *Coupon) IsValid(now time.Time) bool {
	return c.Status == CouponActive &&
		!now.Before(c.ValidFrom) && !now.After(c.ValidUntil) &&
		(c.MaxUses == 0 || c.CurrentUses < c.MaxUses)
}

// CalculateDiscount returns the discount for the given amount. Percentage
// coupons cap at MaxDiscount when set; fixed coupons never exceed the amount.
func (c *Coupon) CalculateDiscount(amount decimal.Decimal) decimal.Decimal {
	if c.DiscountType == DiscountPercentage {
		discount := amount.Mul(c.DiscountValue).Div(decimal.NewFromInt(100)).Floor()
		if c.MaxDiscount.IsPositive() && discount.GreaterThan(c.MaxDiscount) {
			return c.MaxDiscount
		}
		return discount
	}
	if c.DiscountValue.GreaterThan(amount) {
		return amount
	}
	return c.DiscountValue
}

type CouponUsage struct {
	ID             int64           `json:"id"`
	CouponID       int64           `json:"coupon_id"`
	UserID         int64           `json:"user_id"`
	PaymentID      int64           `json:"payment_id"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	UsedAt         time.Time       `json:"used_at"`
}

type Tournament struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`

	Status  TournamentStatus `json:"status"`
	Pricing Pricing          `json:"pricing"`

	MaxParticipants    int             `json:"max_participants"`
	EntryFee           decimal.Decimal `json:"entry_fee"`
	PrizePool          decimal.Decimal `json:"prize_pool"`
	PlatformCommission decimal.Decimal `json:"platform_commission"` // percent

	// BestOf is the number of top placements that share the prize pool.
	BestOf int `json:"best_of"`

	RegistrationStart time.Time  `json:"registration_start"`
	RegistrationEnd   time.Time  `json:"registration_end"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           *time.Time `json:"end_date,omitempty"`

	TotalParticipants int `json:"total_participants"`

	CreatedBy *int64    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanRegister reports whether a new registration is currently accepted.
// Capacity is checked separately against the confirmed-participant count.
func (t *Tournament) CanRegister(now time.Time) bool {
	return t.Status == TournamentRegistration &&
		!now.Before(t.RegistrationStart) && !now.After(t.RegistrationEnd)
}

// PrizeAfterCommission is the distributable pool less the platform cut.
func (t *Tournament) PrizeAfterCommission() decimal.Decimal {
	commission := t.PrizePool.Mul(t.PlatformCommission).Div(decimal.NewFromInt(100)).Floor()
	return t.PrizePool.Sub(commission)
}

type Participant struct {
	ID           int64 `json:"id"`
	TournamentID int64 `json:"tournament_id"`
	UserID       int64 `json:"user_id"`

	Status    ParticipantStatus `json:"status"`
	Placement *int              `json:"placement,omitempty"`
	PrizeWon  decimal.Decimal   `json:"prize_won"`

	PaymentID *int64 `json:"payment_id,omitempty"`

	MatchesPlayed int `json:"matches_played"`
	MatchesWon    int `json:"matches_won"`

	DisqualificationReason string `json:"disqualification_reason,omitempty"`

	JoinedAt time.Time `json:"joined_at"`
}

type Invitation struct {
	ID           int64  `json:"id"`
	TournamentID int64  `json:"tournament_id"`
	InvitedUser  int64  `json:"invited_user_id"`
	InvitedBy    *int64 `json:"invited_by,omitempty"`

	Code   string           `json:"code"`
	Status InvitationStatus `json:"status"`

	Message   string     `json:"message,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

type Match struct {
	ID           int64 `json:"id"`
	TournamentID int64 `json:"tournament_id"`
	MatchNumber  int   `json:"match_number"`

	Player1ID int64 `json:"player1_id"`
	Player2ID int64 `json:"player2_id"`

	BestOf      int `json:"best_of"`
	Player1Wins int `json:"player1_wins"`
	Player2Wins int `json:"player2_wins"`

	WinnerID *int64      `json:"winner_id,omitempty"`
	Status   MatchStatus `json:"status"`

	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WinsNeeded is the win count that forces match completion.
func (m *Match) WinsNeeded() int {
	return m.BestOf/2 + 1
}

// HasPlayer reports whether userID plays in this match.
func (m *Match) HasPlayer(userID int64) bool {
	return userID == m.Player1ID || userID == m.Player2ID
}

// BattleResult is one battle-log tuple from the external game API. It only
// ever drives match win counts and participant stats, never money.
type BattleResult struct {
	MatchID    int64     `json:"match_id"`
	WinnerID   int64     `json:"winner_id"`
	Crowns     int       `json:"crowns"`
	BattleTime time.Time `json:"battle_time"`
}
