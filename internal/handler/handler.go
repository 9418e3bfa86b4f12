package handler

import (
	"errors"
	"net/http"
	"strconv"

	"clash-arena/internal/model"
	"clash-arena/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	ledgerService     service.LedgerService
	paymentService    service.PaymentService
	withdrawalService service.WithdrawalService
	couponService     service.CouponService
	tournamentService service.TournamentService
	matchService      service.MatchService
	logger            zerolog.Logger
}

func NewHandler(
	ledgerService service.LedgerService,
	paymentService service.PaymentService,
	withdrawalService service.WithdrawalService,
	couponService service.CouponService,
	tournamentService service.TournamentService,
	matchService service.MatchService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		ledgerService:     ledgerService,
		paymentService:    paymentService,
		withdrawalService: withdrawalService,
		couponService:     couponService,
		tournamentService: tournamentService,
		matchService:      matchService,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	users.GET("/:id/balance", h.GetBalance)
	users.GET("/:id/transactions", h.GetTransactions)
	users.GET("/:id/payments", h.GetPayments)

	payments := v1.Group("/payments")
	payments.POST("/deposit", h.Deposit)
	payments.POST("/callback", h.GatewayCallback)
	payments.GET("/:transaction_id", h.GetPayment)
	payments.POST("/:transaction_id/retry", h.RetryPayment)
	payments.POST("/:transaction_id/cancel", h.CancelPayment)
	payments.POST("/:transaction_id/refund", h.RefundPayment)

	withdrawals := v1.Group("/withdrawals")
	withdrawals.POST("", h.RequestWithdrawal)
	withdrawals.GET("/:id", h.GetWithdrawal)
	withdrawals.POST("/:id/approve", h.ApproveWithdrawal)
	withdrawals.POST("/:id/reject", h.RejectWithdrawal)
	withdrawals.POST("/:id/complete", h.CompleteWithdrawal)
	withdrawals.POST("/:id/cancel", h.CancelWithdrawal)

	coupons := v1.Group("/coupons")
	coupons.POST("/validate", h.ValidateCoupon)

	tournaments := v1.Group("/tournaments")
	tournaments.POST("", h.CreateTournament)
	tournaments.GET("/:id", h.GetTournament)
	tournaments.POST("/:id/publish", h.PublishTournament)
	tournaments.POST("/:id/open-registration", h.OpenRegistration)
	tournaments.POST("/:id/ready", h.MarkTournamentReady)
	tournaments.POST("/:id/start", h.StartTournament)
	tournaments.POST("/:id/finish", h.FinishTournament)
	tournaments.POST("/:id/cancel", h.CancelTournament)
	tournaments.POST("/:id/register", h.Register)
	tournaments.POST("/:id/distribute-prizes", h.DistributePrizes)
	tournaments.POST("/:id/invitations", h.Invite)

	invitations := v1.Group("/invitations")
	invitations.POST("/:code/accept", h.AcceptInvitation)
	invitations.POST("/:code/decline", h.DeclineInvitation)

	participants := v1.Group("/participants")
	participants.POST("/:id/disqualify", h.DisqualifyParticipant)
	participants.POST("/:id/refund", h.RefundParticipant)

	matches := v1.Group("/matches")
	matches.POST("", h.CreateMatch)
	matches.POST("/:id/start", h.StartMatch)
	matches.POST("/:id/result", h.RecordGameResult)
	matches.POST("/:id/cancel", h.CancelMatch)

	v1.POST("/battles", h.IngestBattleResult)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
		code = "VALIDATION_FAILED"
	case errors.Is(err, model.ErrInvalidPaymentType):
		status = http.StatusBadRequest
		code = "INVALID_PAYMENT_TYPE"
	case errors.Is(err, model.ErrInvalidGateway):
		status = http.StatusBadRequest
		code = "INVALID_GATEWAY"
	case errors.Is(err, model.ErrCouponNotApplicable):
		status = http.StatusBadRequest
		code = "COUPON_NOT_APPLICABLE"
	case errors.Is(err, model.ErrInvalidStateTransition):
		status = http.StatusConflict
		code = "INVALID_STATE_TRANSITION"
	case errors.Is(err, model.ErrAlreadyProcessed):
		status = http.StatusConflict
		code = "ALREADY_PROCESSED"
	case errors.Is(err, model.ErrAlreadyRegistered):
		status = http.StatusConflict
		code = "ALREADY_REGISTERED"
	case errors.Is(err, model.ErrTournamentFull):
		status = http.StatusConflict
		code = "TOURNAMENT_FULL"
	case errors.Is(err, model.ErrRegistrationClosed):
		status = http.StatusConflict
		code = "REGISTRATION_CLOSED"
	case errors.Is(err, model.ErrRetryLimitReached):
		status = http.StatusConflict
		code = "RETRY_LIMIT_REACHED"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrPaymentNotFound):
		status = http.StatusNotFound
		code = "PAYMENT_NOT_FOUND"
	case errors.Is(err, model.ErrWithdrawalNotFound):
		status = http.StatusNotFound
		code = "WITHDRAWAL_NOT_FOUND"
	case errors.Is(err, model.ErrCouponNotFound):
		status = http.StatusNotFound
		code = "COUPON_NOT_FOUND"
	case errors.Is(err, model.ErrTournamentNotFound):
		status = http.StatusNotFound
		code = "TOURNAMENT_NOT_FOUND"
	case errors.Is(err, model.ErrParticipantNotFound):
		status = http.StatusNotFound
		code = "PARTICIPANT_NOT_FOUND"
	case errors.Is(err, model.ErrMatchNotFound):
		status = http.StatusNotFound
		code = "MATCH_NOT_FOUND"
	case errors.Is(err, model.ErrInvitationNotFound):
		status = http.StatusNotFound
		code = "INVITATION_NOT_FOUND"
	case errors.Is(err, model.ErrGatewayUnavailable):
		status = http.StatusBadGateway
		code = "GATEWAY_UNAVAILABLE"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}

// pathID parses a positive integer path parameter; notFound is returned on
// garbage so probing invalid IDs looks like a miss, not a parse error.
func pathID(c *gin.Context, name string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}

func queryUserID(c *gin.Context) (int64, bool) {
	userIDStr := c.Query("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user_id query parameter is required",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user_id must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	return userID, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return false
	}
	return true
}
