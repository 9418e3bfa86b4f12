package handler

import (
	"net/http"
	"strconv"

	"clash-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// GetBalance
// @Summary Get wallet balance
// @Description Returns the current wallet balance for a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, err := pathID(c, "id", model.ErrUserNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.ledgerService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTransactions
// @Summary Get wallet ledger
// @Description Returns a paginated list of wallet ledger entries, newest first
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	userID, err := pathID(c, "id", model.ErrUserNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.ledgerService.ListTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        limit,
		Offset:       offset,
	})
}

// GetPayments
// @Summary Get user payments
// @Description Returns a paginated list of payments for a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} model.Payment
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/payments [get]
func (h *Handler) GetPayments(c *gin.Context) {
	userID, err := pathID(c, "id", model.ErrUserNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	payments, err := h.paymentService.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
