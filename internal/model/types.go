package model

// TransactionType is the direction of a wallet ledger entry.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

func (t TransactionType) String() string {
	return string(t)
}

type PaymentType string

const (
	PaymentDeposit         PaymentType = "deposit"
	PaymentTournamentEntry PaymentType = "tournament_entry"
	PaymentPrize           PaymentType = "prize"
	PaymentWithdrawal      PaymentType = "withdrawal"
	PaymentRefund          PaymentType = "refund"
	PaymentPenalty         PaymentType = "penalty"
	PaymentBonus           PaymentType = "bonus"
)

func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentDeposit, PaymentTournamentEntry, PaymentPrize, PaymentWithdrawal,
		PaymentRefund, PaymentPenalty, PaymentBonus:
		return PaymentType(s), nil
	default:
		return "", ErrInvalidPaymentType
	}
}

func (t PaymentType) String() string {
	return string(t)
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentVerifying  PaymentStatus = "verifying"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentCancelled  PaymentStatus = "cancelled"
	PaymentRefunded   PaymentStatus = "refunded"
	PaymentExpired    PaymentStatus = "expired"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// GatewayKind identifies a payment provider. Gateway wire protocols are
// abstracted behind the gateway.Provider interface; this enum is the tag of
// the typed per-gateway configuration.
type GatewayKind string

const (
	GatewaySandbox GatewayKind = "sandbox"
	GatewayBank    GatewayKind = "bank"
	GatewayWallet  GatewayKind = "wallet"
	GatewayAdmin   GatewayKind = "admin"
)

func ParseGatewayKind(s string) (GatewayKind, error) {
	switch GatewayKind(s) {
	case GatewaySandbox, GatewayBank, GatewayWallet, GatewayAdmin:
		return GatewayKind(s), nil
	default:
		return "", ErrInvalidGateway
	}
}

func (k GatewayKind) String() string {
	return string(k)
}

type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "pending"
	WithdrawalApproved   WithdrawalStatus = "approved"
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalCompleted  WithdrawalStatus = "completed"
	WithdrawalRejected   WithdrawalStatus = "rejected"
	WithdrawalCancelled  WithdrawalStatus = "cancelled"
)

func (s WithdrawalStatus) String() string {
	return string(s)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type CouponStatus string

const (
	CouponActive   CouponStatus = "active"
	CouponInactive CouponStatus = "inactive"
	CouponExpired  CouponStatus = "expired"
)

type TournamentStatus string

const (
	TournamentDraft        TournamentStatus = "draft"
	TournamentPending      TournamentStatus = "pending"
	TournamentRegistration TournamentStatus = "registration"
	TournamentReady        TournamentStatus = "ready"
	TournamentOngoing      TournamentStatus = "ongoing"
	TournamentFinished     TournamentStatus = "finished"
	TournamentCancelled    TournamentStatus = "cancelled"
)

func (s TournamentStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further lifecycle transition is allowed.
func (s TournamentStatus) IsTerminal() bool {
	return s == TournamentFinished || s == TournamentCancelled
}

type Pricing string

const (
	PricingFree    Pricing = "free"
	PricingPremium Pricing = "premium"
)

type ParticipantStatus string

const (
	ParticipantPending      ParticipantStatus = "pending"
	ParticipantConfirmed    ParticipantStatus = "confirmed"
	ParticipantCancelled    ParticipantStatus = "cancelled"
	ParticipantDisqualified ParticipantStatus = "disqualified"
)

func (s ParticipantStatus) String() string {
	return string(s)
}

type MatchStatus string

const (
	MatchScheduled     MatchStatus = "scheduled"
	MatchReady         MatchStatus = "ready"
	MatchOngoing       MatchStatus = "ongoing"
	MatchWaitingResult MatchStatus = "waiting_result"
	MatchCompleted     MatchStatus = "completed"
	MatchCancelled     MatchStatus = "cancelled"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
	InvitationExpired  InvitationStatus = "expired"
)

type NotificationPriority string

const (
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)
