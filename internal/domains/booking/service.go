package booking

import (
	"context"

	"foodee-backend/internal/shared"
)

type Service interface {
	// User
	CreateBooking(ctx context.Context, p shared.Principal, req CreateBookingRequest) (*BookingDTO, error)
	GetHistory(ctx context.Context, p shared.Principal) ([]BookingDTO, error)
	GetBooking(ctx context.Context, p shared.Principal, id int64) (*BookingDTO, error)
	RequestCancel(ctx context.Context, p shared.Principal, id int64) (*BookingDTO, error)

	// Admin
	ListAll(ctx context.Context, p shared.Principal) ([]BookingDTO, error)
	Confirm(ctx context.Context, p shared.Principal, id int64) (*BookingDTO, error)
	Cancel(ctx context.Context, p shared.Principal, id int64) (*BookingDTO, error)
	ApproveCancel(ctx context.Context, p shared.Principal, id int64) (*BookingDTO, error)
	RejectCancel(ctx context.Context, p shared.Principal, id int64) (*BookingDTO, error)
	Delete(ctx context.Context, p shared.Principal, id int64) error
}
