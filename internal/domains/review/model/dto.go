package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateReviewRequest - POST /api/reviews
type CreateReviewRequest struct {
	OrderID   int64  `json:"orderId"`
	ProductID int64  `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrderID, validation.Required.Error("Mã đơn hàng không được để trống")),
		validation.Field(&r.ProductID, validation.Required.Error("Mã sản phẩm không được để trống")),
		validation.Field(&r.Rating,
			validation.Required.Error("Số sao phải từ 1 đến 5"),
			validation.Min(1).Error("Số sao phải từ 1 đến 5"),
			validation.Max(5).Error("Số sao phải từ 1 đến 5"),
		),
		validation.Field(&r.Comment,
			validation.RuneLength(0, 2000).Error("Nội dung đánh giá không được vượt quá 2000 ký tự"),
		),
	)
}

type ReviewDTO struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	OrderID   int64     `json:"orderId"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductReviewsResponse - GET /api/reviews/product/:productId
type ProductReviewsResponse struct {
	ProductID  int64          `json:"productId"`
	Reviews    []ReviewDTO    `json:"reviews"`
	Statistics Statistics     `json:"statistics"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

func NewPaginationMeta(page, limit, total int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
