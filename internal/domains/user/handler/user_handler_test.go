package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodee-backend/internal/domains/user"
	"foodee-backend/internal/shared"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/pkg/jwt"
)

type stubService struct {
	user.Service

	forgotEmail string
	deleted     string
}

func (s *stubService) Login(_ context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if req.Password != "secret1" {
		return nil, user.ErrInvalidCredentials
	}
	return &user.LoginResponse{Token: "tok", TokenType: "Bearer", User: user.UserDTO{Username: req.Username}}, nil
}

func (s *stubService) ForgotPassword(_ context.Context, req user.ForgotPasswordRequest) error {
	s.forgotEmail = req.Email
	return nil
}

func (s *stubService) GetProfile(_ context.Context, p shared.Principal) (*user.UserDTO, error) {
	return &user.UserDTO{ID: p.UserID, Username: p.Username}, nil
}

func (s *stubService) DeleteUser(_ context.Context, p shared.Principal, username string) error {
	if err := shared.RequireAdmin(p); err != nil {
		return err
	}
	s.deleted = username
	return nil
}

func setup(t *testing.T) (*gin.Engine, *stubService, string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &stubService{}
	h := NewUserHandler(svc)
	jm := jwt.NewManager("test-secret", time.Hour)

	adminTok, _, err := jm.GenerateToken(1, "admin", []string{shared.RoleAdmin})
	require.NoError(t, err)
	userTok, _, err := jm.GenerateToken(2, "alice", []string{shared.RoleUser})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/forgot-password", h.ForgotPassword)
	auth := r.Group("/api/user", middleware.AuthMiddleware(jm))
	auth.GET("/profile", h.GetProfile)
	auth.DELETE("/delete/:username", h.DeleteUser)
	return r, svc, adminTok, userTok
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

func TestLogin(t *testing.T) {
	r, _, _, _ := setup(t)

	w := do(r, http.MethodPost, "/api/auth/login", "", `{"username":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Success bool               `json:"success"`
		Data    user.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "tok", env.Data.Token)

	w = do(r, http.MethodPost, "/api/auth/login", "", `{"username":"alice","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "USR004")

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/auth/login", "", `{`).Code)
}

func TestForgotPasswordAlwaysOK(t *testing.T) {
	r, svc, _, _ := setup(t)

	w := do(r, http.MethodPost, "/api/auth/forgot-password", "", `{"email":"ghost@foodee.vn"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ghost@foodee.vn", svc.forgotEmail)
}

func TestProfileUsesPrincipal(t *testing.T) {
	r, _, _, userTok := setup(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/user/profile", "", "").Code)

	w := do(r, http.MethodGet, "/api/user/profile", userTok, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestDeleteUserRequiresAdmin(t *testing.T) {
	r, svc, adminTok, userTok := setup(t)

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodDelete, "/api/user/delete/bob", userTok, "").Code)
	assert.Empty(t, svc.deleted)

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/api/user/delete/bob", adminTok, "").Code)
	assert.Equal(t, "bob", svc.deleted)
}
