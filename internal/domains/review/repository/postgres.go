package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodee-backend/internal/domains/review/model"
	"foodee-backend/pkg/database"
)

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO reviews (user_id, order_id, product_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		review.UserID, review.OrderID, review.ProductID, review.Rating, review.Comment, review.CreatedAt,
	).Scan(&review.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrAlreadyReviewed.Wrap(err)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *postgresReviewRepository) Exists(ctx context.Context, userID, orderID, productID int64) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reviews WHERE user_id = $1 AND order_id = $2 AND product_id = $3
		)
	`, userID, orderID, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check review: %w", err)
	}
	return exists, nil
}

func (r *postgresReviewRepository) ListByProduct(ctx context.Context, productID int64, page, limit int) ([]model.Review, int, error) {
	conn := database.Conn(ctx, r.pool)

	var total int
	if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE product_id = $1`, productID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	rows, err := conn.Query(ctx, `
		SELECT r.id, r.user_id, r.order_id, r.product_id, r.rating, r.comment, r.created_at,
		       u.username, u.full_name
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`, productID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(
			&rv.ID, &rv.UserID, &rv.OrderID, &rv.ProductID, &rv.Rating, &rv.Comment, &rv.CreatedAt,
			&rv.Username, &rv.FullName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *postgresReviewRepository) GetProductStatistics(ctx context.Context, productID int64) (*model.Statistics, error) {
	conn := database.Conn(ctx, r.pool)

	stats := &model.Statistics{RatingBreakdown: map[int]int{}}
	err := conn.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(ROUND(AVG(rating)::numeric, 1), 0)::float8
		FROM reviews
		WHERE product_id = $1
	`, productID).Scan(&stats.TotalReviews, &stats.AverageRating)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	rows, err := conn.Query(ctx, `
		SELECT rating, COUNT(*)
		FROM reviews
		WHERE product_id = $1
		GROUP BY rating
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("failed to scan rating breakdown: %w", err)
		}
		stats.RatingBreakdown[rating] = count
	}
	return stats, rows.Err()
}
