package service

import (
	"context"

	"foodee-backend/internal/domains/cart/model"
	catalog "foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/shared"
)

type ServiceInterface interface {
	// GetCart luôn trả về giỏ, user chưa có giỏ thì giỏ rỗng
	GetCart(ctx context.Context, p shared.Principal) (*model.CartDTO, error)
	AddToCart(ctx context.Context, p shared.Principal, productID int64, quantity int) (*model.CartDTO, error)
	// UpdateQuantity với quantity = 0 là xóa dòng
	UpdateQuantity(ctx context.Context, p shared.Principal, productID int64, quantity int) (*model.CartDTO, error)
	RemoveFromCart(ctx context.Context, p shared.Principal, productID int64) (*model.CartDTO, error)
	ClearCart(ctx context.Context, p shared.Principal) error
}

// ProductReader - phần của catalog repository mà giỏ hàng cần
type ProductReader interface {
	FindByID(ctx context.Context, id int64) (*catalog.Product, error)
}
