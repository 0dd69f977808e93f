package service

import (
	"context"
	"time"

	cart "foodee-backend/internal/domains/cart/model"
	catalog "foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/domains/order/model"
	"foodee-backend/internal/domains/user"
	"foodee-backend/internal/shared"
)

type ServiceInterface interface {
	CreateOrderFromCart(ctx context.Context, p shared.Principal, req model.CreateOrderRequest) (*model.OrderDTO, error)
	CreateOrderFromProduct(ctx context.Context, p shared.Principal, req model.CreateFromProductRequest) (*model.OrderDTO, error)

	GetUserOrders(ctx context.Context, p shared.Principal) ([]model.OrderDTO, error)
	GetAllOrders(ctx context.Context, p shared.Principal) ([]model.OrderDTO, error)

	// admin set trực tiếp, không kiểm tra trạng thái cũ
	UpdateOrderStatus(ctx context.Context, p shared.Principal, orderID int64, status string) (*model.OrderDTO, error)
	UpdatePaymentStatus(ctx context.Context, p shared.Principal, orderID int64, status string) (*model.OrderDTO, error)
	UpdateDeliveryDate(ctx context.Context, p shared.Principal, orderID int64, deliveryDate *time.Time) (*model.OrderDTO, error)

	CancelOrder(ctx context.Context, p shared.Principal, orderID int64) (*model.OrderDTO, error)
	ApproveCancel(ctx context.Context, p shared.Principal, orderID int64) (*model.OrderDTO, error)
	RejectCancel(ctx context.Context, p shared.Principal, orderID int64) (*model.OrderDTO, error)
	DeleteOrder(ctx context.Context, p shared.Principal, orderID int64) error
}

// CartStore - phần của cart repository mà checkout cần
type CartStore interface {
	LockByUserID(ctx context.Context, userID int64) error
	FindByUserID(ctx context.Context, userID int64) (*cart.Cart, error)
	ClearItems(ctx context.Context, cartID int64) (int64, error)
}

type ProductReader interface {
	FindByID(ctx context.Context, id int64) (*catalog.Product, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
}
