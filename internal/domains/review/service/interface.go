package service

import (
	"context"

	catalog "foodee-backend/internal/domains/catalog/model"
	order "foodee-backend/internal/domains/order/model"
	"foodee-backend/internal/domains/review/model"
	"foodee-backend/internal/shared"
)

type ServiceInterface interface {
	CreateReview(ctx context.Context, p shared.Principal, req model.CreateReviewRequest) (*model.ReviewDTO, error)
	ListProductReviews(ctx context.Context, productID int64, page, limit int) (*model.ProductReviewsResponse, error)
}

// OrderReader - order kèm items để kiểm tra món đã mua
type OrderReader interface {
	FindByID(ctx context.Context, id int64) (*order.Order, error)
}

type ProductReader interface {
	FindByID(ctx context.Context, id int64) (*catalog.Product, error)
}
