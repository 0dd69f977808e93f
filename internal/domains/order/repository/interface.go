package repository

import (
	"context"
	"time"

	"foodee-backend/internal/domains/order/model"
)

type OrderRepository interface {
	// Create insert order và items, gán ID cho order và từng item
	Create(ctx context.Context, order *model.Order) error
	CreatePayment(ctx context.Context, payment *model.Payment) error

	// FindByID trả về order kèm items và payment method
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	// ListByUser - mới nhất trước
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)

	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error
	// UpdateStatuses cập nhật cả hai trạng thái trong một câu lệnh (callback thanh toán)
	UpdateStatuses(ctx context.Context, id int64, status model.OrderStatus, paymentStatus model.PaymentStatus) error
	UpdateDeliveryDate(ctx context.Context, id int64, deliveryDate time.Time) error

	// DeletePayment rồi Delete: items xóa theo ON DELETE CASCADE
	DeletePayment(ctx context.Context, orderID int64) error
	Delete(ctx context.Context, id int64) error
}
