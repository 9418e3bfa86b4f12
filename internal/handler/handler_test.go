package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clash-arena/internal/model"
	svcmocks "clash-arena/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type handlerMocks struct {
	ledger   *svcmocks.LedgerService
	payments *svcmocks.PaymentService
	coupons  *svcmocks.CouponService
}

func newTestRouter(t *testing.T) (*gin.Engine, *handlerMocks) {
	m := &handlerMocks{
		ledger:   svcmocks.NewLedgerService(t),
		payments: svcmocks.NewPaymentService(t),
		coupons:  svcmocks.NewCouponService(t),
	}
	h := NewHandler(m.ledger, m.payments, nil, m.coupons, nil, nil, zerolog.Nop())
	return h.SetupRoutes(), m
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetBalance(t *testing.T) {
	router, m := newTestRouter(t)

	m.ledger.On("GetBalance", mock.Anything, int64(1)).Return(&model.BalanceResponse{
		UserID:  1,
		Balance: "100000",
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/users/1/balance", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "100000", resp.Balance)
}

func TestGetBalance_GarbageID(t *testing.T) {
	router, m := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/users/abc/balance", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "USER_NOT_FOUND", decodeError(t, w).Code)
	m.ledger.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything)
}

func TestGetBalance_UnknownUser(t *testing.T) {
	router, m := newTestRouter(t)

	m.ledger.On("GetBalance", mock.Anything, int64(999)).Return(nil, model.ErrUserNotFound)

	w := doRequest(router, http.MethodGet, "/api/v1/users/999/balance", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "USER_NOT_FOUND", decodeError(t, w).Code)
}

func TestDeposit(t *testing.T) {
	router, m := newTestRouter(t)

	m.payments.On("Deposit", mock.Anything, int64(1), mock.MatchedBy(func(req *model.DepositRequest) bool {
		return req.Amount == "100000" && req.Gateway == "sandbox"
	})).Return(&model.PaymentResponse{
		TransactionID: "tx-1",
		Status:        "pending",
		Amount:        "100000",
	}, nil)

	w := doRequest(router, http.MethodPost, "/api/v1/payments/deposit?user_id=1", model.DepositRequest{
		Amount:  "100000",
		Gateway: "sandbox",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp model.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tx-1", resp.TransactionID)
}

func TestDeposit_MissingUserID(t *testing.T) {
	router, m := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/payments/deposit", model.DepositRequest{
		Amount:  "100000",
		Gateway: "sandbox",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
	m.payments.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeposit_GatewayDown(t *testing.T) {
	router, m := newTestRouter(t)

	m.payments.On("Deposit", mock.Anything, int64(1), mock.Anything).Return(nil, model.ErrGatewayUnavailable)

	w := doRequest(router, http.MethodPost, "/api/v1/payments/deposit?user_id=1", model.DepositRequest{
		Amount:  "100000",
		Gateway: "sandbox",
	})

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "GATEWAY_UNAVAILABLE", decodeError(t, w).Code)
}

func TestGatewayCallback(t *testing.T) {
	router, m := newTestRouter(t)

	m.payments.On("HandleGatewayCallback", mock.Anything, mock.MatchedBy(func(req *model.GatewayCallbackRequest) bool {
		return req.GatewayTransactionID == "gw-1" && req.Success
	})).Return(true, nil)

	w := doRequest(router, http.MethodPost, "/api/v1/payments/callback", model.GatewayCallbackRequest{
		GatewayTransactionID: "gw-1",
		Success:              true,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
}

func TestValidateCoupon(t *testing.T) {
	router, m := newTestRouter(t)

	m.coupons.On("Validate", mock.Anything, int64(1), mock.MatchedBy(func(req *model.CouponValidateRequest) bool {
		return req.Code == "WELCOME"
	})).Return(&model.CouponValidateResponse{
		Valid:       true,
		Discount:    "15000",
		FinalAmount: "85000",
	}, nil)

	w := doRequest(router, http.MethodPost, "/api/v1/coupons/validate?user_id=1", model.CouponValidateRequest{
		Code:         "WELCOME",
		TournamentID: 5,
		Amount:       "100000",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.CouponValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, "85000", resp.FinalAmount)
}

func TestValidateCoupon_BadBody(t *testing.T) {
	router, m := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/coupons/validate?user_id=1", gin.H{"code": ""})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
	m.coupons.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything, mock.Anything)
}

func TestRetryPayment_Conflict(t *testing.T) {
	router, m := newTestRouter(t)

	m.payments.On("Retry", mock.Anything, int64(1), "tx-1").Return(nil, model.ErrRetryLimitReached)

	w := doRequest(router, http.MethodPost, "/api/v1/payments/tx-1/retry?user_id=1", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "RETRY_LIMIT_REACHED", decodeError(t, w).Code)
}
