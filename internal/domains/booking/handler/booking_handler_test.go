package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodee-backend/internal/domains/booking"
	"foodee-backend/internal/shared"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/pkg/jwt"
)

type stubService struct {
	booking.Service
	created booking.CreateBookingRequest
}

func (s *stubService) CreateBooking(_ context.Context, p shared.Principal, req booking.CreateBookingRequest) (*booking.BookingDTO, error) {
	s.created = req
	return &booking.BookingDTO{ID: 1, Status: "PENDING", Username: p.Username}, nil
}

func (s *stubService) GetBooking(_ context.Context, p shared.Principal, id int64) (*booking.BookingDTO, error) {
	if p.UserID != 7 && !p.IsAdmin() {
		return nil, booking.ErrViewForbidden
	}
	return &booking.BookingDTO{ID: id}, nil
}

func (s *stubService) RequestCancel(_ context.Context, _ shared.Principal, id int64) (*booking.BookingDTO, error) {
	return nil, booking.ErrCannotRequestCancel
}

func (s *stubService) Delete(_ context.Context, p shared.Principal, _ int64) error {
	return shared.RequireAdmin(p)
}

func setup(t *testing.T) (*gin.Engine, *stubService, map[int64]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &stubService{}
	h := NewBookingHandler(svc)
	jm := jwt.NewManager("test-secret", time.Hour)

	tokens := map[int64]string{}
	for id, name := range map[int64]string{7: "alice", 8: "bob"} {
		tok, _, err := jm.GenerateToken(id, name, []string{shared.RoleUser})
		require.NoError(t, err)
		tokens[id] = tok
	}

	r := gin.New()
	g := r.Group("/api/booking", middleware.AuthMiddleware(jm))
	g.POST("/create", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/user/cancel/:id", h.UserCancel)
	g.DELETE("/delete/:id", h.Delete)
	return r, svc, tokens
}

func do(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingHandler(t *testing.T) {
	r, svc, tokens := setup(t)

	w := do(r, http.MethodPost, "/api/booking/create", tokens[7],
		`{"fullName":"Nguyễn Văn A","phoneNumber":"0901234567","bookingDate":"2030-01-01","bookingTime":"19:00","numberOfGuests":2,"area":"Sân vườn"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "19:00", svc.created.BookingTime)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)

	w = do(r, http.MethodPost, "/api/booking/create", tokens[7], `{bad`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/booking/create", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingStatusCodes(t *testing.T) {
	r, _, tokens := setup(t)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/booking/3", tokens[7], "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/booking/3", tokens[8], "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/booking/abc", tokens[7], "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api/booking/user/cancel/3", tokens[7], "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodDelete, "/api/booking/delete/3", tokens[7], "").Code)
}
