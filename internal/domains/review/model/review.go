package model

import "time"

// Review - đánh giá một món trong một đơn đã giao
type Review struct {
	ID        int64
	UserID    int64
	OrderID   int64
	ProductID int64
	Rating    int // 1-5
	Comment   string
	CreatedAt time.Time

	// join từ users khi đọc ra
	Username string
	FullName string
}

func (r *Review) ToDTO() ReviewDTO {
	return ReviewDTO{
		ID:        r.ID,
		ProductID: r.ProductID,
		OrderID:   r.OrderID,
		UserID:    r.UserID,
		Username:  r.Username,
		FullName:  r.FullName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// Statistics - thống kê đánh giá của một sản phẩm
type Statistics struct {
	TotalReviews    int         `json:"totalReviews"`
	AverageRating   float64     `json:"averageRating"`
	RatingBreakdown map[int]int `json:"ratingBreakdown"` // {5: 10, 4: 3, ...}
}
