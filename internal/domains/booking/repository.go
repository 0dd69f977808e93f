package booking

import "context"

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	FindByID(ctx context.Context, id int64) (*Booking, error)
	// ListByUser mới nhất trước
	ListByUser(ctx context.Context, userID int64) ([]Booking, error)
	ListAll(ctx context.Context) ([]Booking, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) error
}
