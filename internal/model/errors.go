package model

import "errors"

var (
	// ErrInsufficientFunds is returned when a debit would push the wallet
	// balance below zero. Debits are rejected, never clamped.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidStateTransition is returned when an operation is attempted
	// outside its allowed state (e.g. refunding a non-completed payment).
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrAlreadyProcessed signals a tripped idempotency guard. Callers treat
	// it as an expected race (retried webhook, double submit), not a failure.
	ErrAlreadyProcessed = errors.New("already processed")

	ErrValidation         = errors.New("validation failed")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidPaymentType = errors.New("invalid payment type")
	ErrInvalidGateway     = errors.New("invalid gateway")

	ErrUserNotFound        = errors.New("user not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrInvitationNotFound  = errors.New("invitation not found")

	ErrAlreadyRegistered   = errors.New("already registered for tournament")
	ErrTournamentFull      = errors.New("tournament is full")
	ErrRegistrationClosed  = errors.New("registration is closed")
	ErrCouponNotApplicable = errors.New("coupon not applicable")
	ErrRetryLimitReached   = errors.New("retry limit reached")
)
