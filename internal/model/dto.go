package model

import "time"

type DepositRequest struct {
	Amount      string `json:"amount" binding:"required" example:"100000"`
	Gateway     string `json:"gateway" binding:"required" example:"sandbox" enums:"sandbox,bank"`
	Description string `json:"description,omitempty"`
}

type PaymentResponse struct {
	TransactionID string `json:"transaction_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Status        string `json:"status" example:"pending"`
	Amount        string `json:"amount" example:"100000"`
	Fee           string `json:"fee" example:"0"`
	FinalAmount   string `json:"final_amount" example:"100000"`
	ExpiresAt     string `json:"expires_at,omitempty"`
	Message       string `json:"message,omitempty"`
}

type GatewayCallbackRequest struct {
	GatewayTransactionID string `json:"gateway_transaction_id" binding:"required"`
	Success              bool   `json:"success"`
	TrackingCode         string `json:"tracking_code,omitempty"`
	CardNumber           string `json:"card_number,omitempty"`
	CardHolderName       string `json:"card_holder_name,omitempty"`
	Reason               string `json:"reason,omitempty"`
}

type WithdrawalRequest struct {
	Amount            string `json:"amount" binding:"required" example:"50000"`
	BankName          string `json:"bank_name,omitempty"`
	BankAccountNumber string `json:"bank_account_number" binding:"required"`
	BankCardNumber    string `json:"bank_card_number" binding:"required,len=16"`
	AccountHolderName string `json:"account_holder_name" binding:"required"`
	ShebaNumber       string `json:"sheba_number,omitempty"`
}

type WithdrawalActionRequest struct {
	AdminID      int64  `json:"admin_id,omitempty"`
	TrackingCode string `json:"tracking_code,omitempty"`
	Reference    string `json:"reference,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

type CouponValidateRequest struct {
	Code         string `json:"code" binding:"required"`
	TournamentID int64  `json:"tournament_id" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
}

type CouponValidateResponse struct {
	Valid       bool   `json:"valid"`
	Reason      string `json:"reason,omitempty"`
	Discount    string `json:"discount,omitempty"`
	FinalAmount string `json:"final_amount,omitempty"`
}

type CreateTournamentRequest struct {
	Title              string    `json:"title" binding:"required"`
	Pricing            string    `json:"pricing" binding:"required,oneof=free premium"`
	MaxParticipants    int       `json:"max_participants" binding:"required,min=2,max=1000"`
	EntryFee           string    `json:"entry_fee" binding:"required"`
	PlatformCommission string    `json:"platform_commission,omitempty"`
	BestOf             int       `json:"best_of,omitempty"`
	RegistrationStart  time.Time `json:"registration_start" binding:"required"`
	RegistrationEnd    time.Time `json:"registration_end" binding:"required"`
	StartDate          time.Time `json:"start_date" binding:"required"`
	CreatedBy          int64     `json:"created_by,omitempty"`
}

type RegisterRequest struct {
	CouponCode string `json:"coupon_code,omitempty"`
}

type RegistrationResponse struct {
	ParticipantID int64            `json:"participant_id"`
	Status        string           `json:"status"`
	Payment       *PaymentResponse `json:"payment,omitempty"`
	Message       string           `json:"message,omitempty"`
}

type ReasonRequest struct {
	AdminID int64  `json:"admin_id,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type InviteRequest struct {
	InvitedUserID int64  `json:"invited_user_id" binding:"required"`
	InvitedBy     int64  `json:"invited_by,omitempty"`
	Message       string `json:"message,omitempty"`
}

type CreateMatchRequest struct {
	TournamentID int64 `json:"tournament_id" binding:"required"`
	MatchNumber  int   `json:"match_number" binding:"required"`
	Player1ID    int64 `json:"player1_id" binding:"required"`
	Player2ID    int64 `json:"player2_id" binding:"required"`
	BestOf       int   `json:"best_of,omitempty"`
}

type GameResultRequest struct {
	WinnerID   int64     `json:"winner_id" binding:"required"`
	Crowns     int       `json:"crowns,omitempty"`
	BattleTime time.Time `json:"battle_time,omitempty"`
}

type BalanceResponse struct {
	UserID  int64  `json:"user_id" example:"1"`
	Balance string `json:"balance" example:"100000"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient funds"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}

type StatusResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message,omitempty"`
}
