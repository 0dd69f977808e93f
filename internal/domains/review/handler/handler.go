package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/domains/review/model"
	"foodee-backend/internal/domains/review/service"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/internal/shared/response"
)

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReview POST /api/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	var req model.CreateReviewRequest
	if !response.BindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), p, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Đánh giá thành công", review)
}

// ListProductReviews GET /api/reviews/product/:productId?page=&limit=
func (h *ReviewHandler) ListProductReviews(c *gin.Context) {
	productID, ok := response.ParamID(c, "productId")
	if !ok {
		return
	}
	page := response.QueryIntDefault(c, "page", 1)
	limit := response.QueryIntDefault(c, "limit", 20)

	res, err := h.reviewService.ListProductReviews(c.Request.Context(), productID, page, limit)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, res)
}
