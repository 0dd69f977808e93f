package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	order "foodee-backend/internal/domains/order/model"
	"foodee-backend/internal/domains/payment/model"
	"foodee-backend/internal/shared"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/pkg/jwt"
)

type stubService struct {
	received map[string]string
	clientIP string
}

func (s *stubService) CreatePaymentURL(_ context.Context, p shared.Principal, orderID int64, clientIP string) (*model.PaymentURLResponse, error) {
	if orderID != 5 {
		return nil, order.ErrOrderNotFound
	}
	s.clientIP = clientIP
	return &model.PaymentURLResponse{OrderID: orderID, PaymentURL: "https://pay.example/?vnp_TxnRef=5"}, nil
}

func (s *stubService) HandleCallback(_ context.Context, params map[string]string) bool {
	s.received = params
	return params["vnp_TxnRef"] == "5"
}

func setup(t *testing.T) (*gin.Engine, *stubService, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &stubService{}
	h := NewHandler(svc)
	jm := jwt.NewManager("test-secret", time.Hour)
	token, _, err := jm.GenerateToken(7, "alice", []string{shared.RoleUser})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/payments/vnpay/create/:orderId", middleware.AuthMiddleware(jm), h.CreatePayment)
	r.GET("/api/payments/vnpay/confirm", h.Confirm)
	r.POST("/api/payments/vnpay/confirm", h.Confirm)
	return r, svc, token
}

func TestCreatePayment(t *testing.T) {
	r, svc, token := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/vnpay/create/5", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data model.PaymentURLResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.Data.OrderID)
	assert.NotEmpty(t, body.Data.PaymentURL)
	assert.Equal(t, "203.0.113.5", svc.clientIP)

	req = httptest.NewRequest(http.MethodPost, "/api/payments/vnpay/create/9", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/payments/vnpay/create/5", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestConfirmFromQuery(t *testing.T) {
	r, svc, _ := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/api/payments/vnpay/confirm?vnp_TxnRef=5&vnp_ResponseCode=00&vnp_OrderInfo=Thanh+toan&foo=bar", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUCCESS", w.Body.String())
	assert.Equal(t, "Thanh toan", svc.received["vnp_OrderInfo"])
	assert.NotContains(t, svc.received, "foo")
}

func TestConfirmFromForm(t *testing.T) {
	r, svc, _ := setup(t)

	form := url.Values{"vnp_TxnRef": {"5"}, "vnp_ResponseCode": {"24"}}
	req := httptest.NewRequest(http.MethodPost, "/api/payments/vnpay/confirm", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "24", svc.received["vnp_ResponseCode"])
}

func TestConfirmInvalid(t *testing.T) {
	r, _, _ := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/payments/vnpay/confirm?vnp_TxnRef=abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID", w.Body.String())
}
