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

	"foodee-backend/internal/domains/review/model"
	"foodee-backend/internal/shared"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/pkg/jwt"
)

type stubService struct {
	created   *model.CreateReviewRequest
	createdBy shared.Principal
	createErr error

	page, limit int
}

func (s *stubService) CreateReview(_ context.Context, p shared.Principal, req model.CreateReviewRequest) (*model.ReviewDTO, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &req
	s.createdBy = p
	return &model.ReviewDTO{ID: 1, ProductID: req.ProductID, OrderID: req.OrderID, UserID: p.UserID, Rating: req.Rating}, nil
}

func (s *stubService) ListProductReviews(_ context.Context, productID int64, page, limit int) (*model.ProductReviewsResponse, error) {
	s.page, s.limit = page, limit
	return &model.ProductReviewsResponse{
		ProductID:  productID,
		Reviews:    []model.ReviewDTO{},
		Pagination: model.NewPaginationMeta(page, limit, 0),
	}, nil
}

func setup(t *testing.T) (*gin.Engine, *stubService, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &stubService{}
	h := NewReviewHandler(svc)
	jm := jwt.NewManager("test-secret", time.Hour)

	tok, _, err := jm.GenerateToken(7, "alice", []string{shared.RoleUser})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/reviews", middleware.AuthMiddleware(jm), h.CreateReview)
	r.GET("/api/reviews/product/:productId", h.ListProductReviews)
	return r, svc, tok
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

func TestCreateReview(t *testing.T) {
	r, svc, tok := setup(t)
	body := `{"orderId":3,"productId":5,"rating":4,"comment":"Ngon"}`

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/api/reviews", "", body).Code)
	assert.Nil(t, svc.created)

	w := do(r, http.MethodPost, "/api/reviews", tok, body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, int64(3), svc.created.OrderID)
	assert.Equal(t, "Ngon", svc.created.Comment)
	assert.Equal(t, int64(7), svc.createdBy.UserID)

	var env struct {
		Success bool            `json:"success"`
		Data    model.ReviewDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, 4, env.Data.Rating)
}

func TestCreateReviewErrors(t *testing.T) {
	r, svc, tok := setup(t)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/reviews", tok, `{"orderId":`).Code)

	svc.createErr = model.ErrAlreadyReviewed
	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, "/api/reviews", tok, `{"orderId":1,"productId":1,"rating":5}`).Code)

	svc.createErr = model.ErrNotOrderOwner
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/api/reviews", tok, `{"orderId":1,"productId":1,"rating":5}`).Code)
}

func TestListProductReviews(t *testing.T) {
	r, svc, _ := setup(t)

	w := do(r, http.MethodGet, "/api/reviews/product/5", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.page)
	assert.Equal(t, 20, svc.limit)

	do(r, http.MethodGet, "/api/reviews/product/5?page=2&limit=5", "", "")
	assert.Equal(t, 2, svc.page)
	assert.Equal(t, 5, svc.limit)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/reviews/product/0", "", "").Code)
}
