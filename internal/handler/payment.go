package handler

import (
	"net/http"

	"clash-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// Deposit
// @Summary Initiate a deposit
// @Description Creates a pending deposit payment and returns the gateway payment URL
// @Tags payments
// @Accept json
// @Produce json
// @Param user_id query int true "User ID"
// @Param deposit body model.DepositRequest true "Deposit details"
// @Success 201 {object} model.PaymentResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 502 {object} model.ErrorResponse "Gateway unavailable"
// @Router /payments/deposit [post]
func (h *Handler) Deposit(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req model.DepositRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.Deposit(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GatewayCallback
// @Summary Gateway payment callback
// @Description Receives the gateway callback and settles the payment. Safe to retry.
// @Tags payments
// @Accept json
// @Produce json
// @Param callback body model.GatewayCallbackRequest true "Callback payload"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse "Payment not found"
// @Router /payments/callback [post]
func (h *Handler) GatewayCallback(c *gin.Context) {
	var req model.GatewayCallbackRequest
	if !bindJSON(c, &req) {
		return
	}

	completed, err := h.paymentService.HandleGatewayCallback(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := "failed"
	if completed {
		status = "completed"
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: status})
}

// GetPayment
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param transaction_id path string true "Payment transaction ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} model.Payment
// @Failure 404 {object} model.ErrorResponse "Payment not found"
// @Router /payments/{transaction_id} [get]
func (h *Handler) GetPayment(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.Get(c.Request.Context(), userID, c.Param("transaction_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// RetryPayment
// @Summary Retry a failed or expired payment
// @Description Resets the payment to pending with a fresh expiry, bounded by the retry limit
// @Tags payments
// @Produce json
// @Param transaction_id path string true "Payment transaction ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} model.PaymentResponse
// @Failure 409 {object} model.ErrorResponse "Retry limit reached"
// @Router /payments/{transaction_id}/retry [post]
func (h *Handler) RetryPayment(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	resp, err := h.paymentService.Retry(c.Request.Context(), userID, c.Param("transaction_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CancelPayment
// @Summary Cancel a pending payment
// @Tags payments
// @Accept json
// @Produce json
// @Param transaction_id path string true "Payment transaction ID"
// @Param user_id query int true "User ID"
// @Param reason body model.ReasonRequest false "Cancellation reason"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /payments/{transaction_id}/cancel [post]
func (h *Handler) CancelPayment(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req model.ReasonRequest
	_ = c.ShouldBindJSON(&req)

	err := h.paymentService.Cancel(c.Request.Context(), userID, c.Param("transaction_id"), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "cancelled"})
}

// RefundPayment
// @Summary Refund a completed payment
// @Description Reverses a completed payment and writes a refund audit record
// @Tags payments
// @Accept json
// @Produce json
// @Param transaction_id path string true "Payment transaction ID"
// @Param reason body model.ReasonRequest false "Refund reason"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /payments/{transaction_id}/refund [post]
func (h *Handler) RefundPayment(c *gin.Context) {
	var req model.ReasonRequest
	_ = c.ShouldBindJSON(&req)

	var adminID *int64
	if req.AdminID > 0 {
		adminID = &req.AdminID
	}

	err := h.paymentService.Refund(c.Request.Context(), c.Param("transaction_id"), req.Reason, adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "refunded"})
}
