package repository

import (
	"context"

	"foodee-backend/internal/domains/review/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	// Exists - user đã đánh giá sản phẩm này trong đơn này chưa
	Exists(ctx context.Context, userID, orderID, productID int64) (bool, error)
	// ListByProduct mới nhất trước, trả kèm tổng số
	ListByProduct(ctx context.Context, productID int64, page, limit int) ([]model.Review, int, error)
	// GetProductStatistics - tổng, trung bình (1 chữ số thập phân) và phân bố số sao
	GetProductStatistics(ctx context.Context, productID int64) (*model.Statistics, error)
}
