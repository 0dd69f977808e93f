package service

import (
	"context"
	"errors"
	"strings"
	"time"

	catalog "foodee-backend/internal/domains/catalog/model"
	order "foodee-backend/internal/domains/order/model"
	"foodee-backend/internal/domains/review/model"
	"foodee-backend/internal/domains/review/repository"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/logger"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	orders     OrderReader
	products   ProductReader
	now        func() time.Time
}

func NewReviewService(reviewRepo repository.ReviewRepository, orders OrderReader, products ProductReader) ServiceInterface {
	return &reviewService{
		reviewRepo: reviewRepo,
		orders:     orders,
		products:   products,
		now:        time.Now,
	}
}

// =====================================================
// CREATE REVIEW
// =====================================================

// CreateReview: chủ đơn, đơn đã giao, món có trong đơn, chưa đánh giá
func (s *reviewService) CreateReview(ctx context.Context, p shared.Principal, req model.CreateReviewRequest) (*model.ReviewDTO, error) {
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return nil, err
	}

	o, err := s.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, model.ErrProductNotFound
		}
		return nil, err
	}

	if !o.IsOwnedBy(p.UserID) {
		return nil, model.ErrNotOrderOwner
	}
	if !o.IsDelivered() {
		return nil, model.ErrOrderNotDelivered
	}
	if !o.ContainsProduct(req.ProductID) {
		return nil, model.ErrProductNotInOrder
	}

	exists, err := s.reviewRepo.Exists(ctx, p.UserID, req.OrderID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrAlreadyReviewed
	}

	review := &model.Review{
		UserID:    p.UserID,
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: s.now(),
		Username:  p.Username,
		FullName:  o.FullName,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	logger.Info("Review created", map[string]interface{}{
		"review_id":  review.ID,
		"user_id":    p.UserID,
		"order_id":   req.OrderID,
		"product_id": req.ProductID,
		"rating":     req.Rating,
	})

	dto := review.ToDTO()
	return &dto, nil
}

// =====================================================
// LIST BY PRODUCT
// =====================================================

func (s *reviewService) ListProductReviews(ctx context.Context, productID int64, page, limit int) (*model.ProductReviewsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, model.ErrProductNotFound
		}
		return nil, err
	}

	reviews, total, err := s.reviewRepo.ListByProduct(ctx, productID, page, limit)
	if err != nil {
		return nil, err
	}
	stats, err := s.reviewRepo.GetProductStatistics(ctx, productID)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.ReviewDTO, 0, len(reviews))
	for i := range reviews {
		dtos = append(dtos, reviews[i].ToDTO())
	}

	return &model.ProductReviewsResponse{
		ProductID:  productID,
		Reviews:    dtos,
		Statistics: *stats,
		Pagination: model.NewPaginationMeta(page, limit, total),
	}, nil
}
