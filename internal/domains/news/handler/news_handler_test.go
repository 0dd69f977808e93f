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

	"foodee-backend/internal/domains/news/model"
	"foodee-backend/internal/domains/news/service"
	"foodee-backend/internal/shared"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/pkg/jwt"
)

type stubService struct {
	service.NewsService
	searched string
}

func (s *stubService) List(context.Context) ([]model.NewsDTO, error) {
	return []model.NewsDTO{{ID: 1, Title: "A"}}, nil
}

func (s *stubService) Search(_ context.Context, title string) ([]model.NewsDTO, error) {
	s.searched = title
	if title == "" {
		return nil, model.ErrEmptySearchTitle
	}
	return []model.NewsDTO{}, nil
}

func (s *stubService) Get(_ context.Context, id int64) (*model.NewsDTO, error) {
	if id != 1 {
		return nil, model.ErrNewsNotFound
	}
	return &model.NewsDTO{ID: 1}, nil
}

func (s *stubService) Create(_ context.Context, p shared.Principal, req model.NewsRequest) (*model.NewsDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	return &model.NewsDTO{ID: 2, Title: req.Title}, nil
}

func setup(t *testing.T) (*gin.Engine, *stubService, string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &stubService{}
	h := NewNewsHandler(svc)
	jm := jwt.NewManager("test-secret", time.Hour)

	adminTok, _, err := jm.GenerateToken(1, "admin", []string{shared.RoleAdmin})
	require.NoError(t, err)
	userTok, _, err := jm.GenerateToken(2, "alice", []string{shared.RoleUser})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/api/news", h.List)
	r.GET("/api/news/search", h.Search)
	r.GET("/api/news/:id", h.Get)
	r.POST("/api/news", middleware.AuthMiddleware(jm), h.Create)
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

func TestPublicRoutes(t *testing.T) {
	r, svc, _, _ := setup(t)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/news", "", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/news/1", "", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/news/9", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/news/abc", "", "").Code)

	w := do(r, http.MethodGet, "/api/news/search?title=khuyen", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "khuyen", svc.searched)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/news/search", "", "").Code)
}

func TestCreateRequiresAdmin(t *testing.T) {
	r, _, adminTok, userTok := setup(t)
	body := `{"title":"Menu mới"}`

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/api/news", "", body).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/api/news", userTok, body).Code)

	w := do(r, http.MethodPost, "/api/news", adminTok, body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Menu mới")
}
