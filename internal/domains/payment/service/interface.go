package service

import (
	"context"

	order "foodee-backend/internal/domains/order/model"
	"foodee-backend/internal/domains/payment/gateway/vnpay"
	"foodee-backend/internal/domains/payment/model"
	"foodee-backend/internal/shared"
)

type ServiceInterface interface {
	CreatePaymentURL(ctx context.Context, p shared.Principal, orderID int64, clientIP string) (*model.PaymentURLResponse, error)
	// HandleCallback trả false khi tham số không hợp lệ; khi đó không có gì bị thay đổi
	HandleCallback(ctx context.Context, params map[string]string) bool
}

// OrderStore - phần của order repository mà payment cần
type OrderStore interface {
	FindByID(ctx context.Context, id int64) (*order.Order, error)
	UpdateStatuses(ctx context.Context, id int64, status order.OrderStatus, paymentStatus order.PaymentStatus) error
}

// Gateway - *vnpay.Client
type Gateway interface {
	CreatePaymentURL(req vnpay.PaymentRequest) (string, error)
	VerifyCallback(params map[string]string) bool
}
