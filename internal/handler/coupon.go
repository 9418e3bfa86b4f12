package handler

import (
	"net/http"

	"clash-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// ValidateCoupon
// @Summary Validate a coupon
// @Description Previews whether a coupon applies to a tournament entry. Not a reservation.
// @Tags coupons
// @Accept json
// @Produce json
// @Param user_id query int true "User ID"
// @Param coupon body model.CouponValidateRequest true "Coupon details"
// @Success 200 {object} model.CouponValidateResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /coupons/validate [post]
func (h *Handler) ValidateCoupon(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req model.CouponValidateRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.couponService.Validate(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
