package repository

import (
	"context"

	"foodee-backend/internal/domains/cart/model"
)

type Repository interface {
	// GetOrCreate trả về giỏ (không kèm items) của user, tạo mới nếu chưa có
	GetOrCreate(ctx context.Context, userID int64) (*model.Cart, error)

	// FindByUserID trả về giỏ kèm items; user chưa có giỏ thì trả về giỏ rỗng ID = 0
	FindByUserID(ctx context.Context, userID int64) (*model.Cart, error)

	// LockByUserID khóa giỏ của user tới hết transaction hiện tại (SELECT ... FOR UPDATE)
	// User chưa có giỏ thì không khóa gì
	LockByUserID(ctx context.Context, userID int64) error

	// FindItem trả về nil, nil nếu sản phẩm chưa có trong giỏ
	FindItem(ctx context.Context, cartID, productID int64) (*model.CartItem, error)

	// UpsertItem insert hoặc ghi đè quantity / subtotal theo (cart, product)
	UpsertItem(ctx context.Context, item *model.CartItem) error
	DeleteItem(ctx context.Context, cartID, productID int64) (bool, error)
	ClearItems(ctx context.Context, cartID int64) (int64, error)
}
