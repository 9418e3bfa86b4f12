package handler

import (
	"net/http"

	"clash-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// RequestWithdrawal
// @Summary Request a withdrawal
// @Description Creates a pending withdrawal request for admin review
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param user_id query int true "User ID"
// @Param withdrawal body model.WithdrawalRequest true "Withdrawal details"
// @Success 201 {object} model.Withdrawal
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /withdrawals [post]
func (h *Handler) RequestWithdrawal(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req model.WithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}

	withdrawal, err := h.withdrawalService.Request(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, withdrawal)
}

// GetWithdrawal
// @Summary Get a withdrawal
// @Tags withdrawals
// @Produce json
// @Param id path int true "Withdrawal ID"
// @Success 200 {object} model.Withdrawal
// @Failure 404 {object} model.ErrorResponse "Withdrawal not found"
// @Router /withdrawals/{id} [get]
func (h *Handler) GetWithdrawal(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrWithdrawalNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	withdrawal, err := h.withdrawalService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, withdrawal)
}

// ApproveWithdrawal
// @Summary Approve a withdrawal
// @Description Debits the wallet and moves the withdrawal to processing
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param id path int true "Withdrawal ID"
// @Param action body model.WithdrawalActionRequest true "Approval details"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient funds"
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /withdrawals/{id}/approve [post]
func (h *Handler) ApproveWithdrawal(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrWithdrawalNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.WithdrawalActionRequest
	_ = c.ShouldBindJSON(&req)

	err = h.withdrawalService.Approve(c.Request.Context(), id, req.AdminID, req.TrackingCode)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "approved"})
}

// RejectWithdrawal
// @Summary Reject a withdrawal
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param id path int true "Withdrawal ID"
// @Param action body model.WithdrawalActionRequest true "Rejection details"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /withdrawals/{id}/reject [post]
func (h *Handler) RejectWithdrawal(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrWithdrawalNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.WithdrawalActionRequest
	_ = c.ShouldBindJSON(&req)

	err = h.withdrawalService.Reject(c.Request.Context(), id, req.AdminID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "rejected"})
}

// CompleteWithdrawal
// @Summary Complete a withdrawal
// @Description Records the bank transfer reference and settles the withdrawal
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param id path int true "Withdrawal ID"
// @Param action body model.WithdrawalActionRequest true "Completion details"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /withdrawals/{id}/complete [post]
func (h *Handler) CompleteWithdrawal(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrWithdrawalNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.WithdrawalActionRequest
	_ = c.ShouldBindJSON(&req)

	err = h.withdrawalService.Complete(c.Request.Context(), id, req.Reference)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "completed"})
}

// CancelWithdrawal
// @Summary Cancel a withdrawal
// @Description Cancels a pending or approved withdrawal, crediting back any debit
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param id path int true "Withdrawal ID"
// @Param action body model.WithdrawalActionRequest false "Cancellation reason"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /withdrawals/{id}/cancel [post]
func (h *Handler) CancelWithdrawal(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrWithdrawalNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.WithdrawalActionRequest
	_ = c.ShouldBindJSON(&req)

	err = h.withdrawalService.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "cancelled"})
}
