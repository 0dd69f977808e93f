package model

import "foodee-backend/internal/shared"

// PaymentURLResponse - body của POST /api/payments/vnpay/create/{orderId}
type PaymentURLResponse struct {
	OrderID    int64  `json:"orderId"`
	PaymentURL string `json:"paymentUrl"`
}

const (
	CallbackSuccess = "SUCCESS"
	CallbackInvalid = "INVALID"
)

var (
	ErrGatewayDisabled = shared.Internal("PAY001", "Cổng thanh toán VNPay chưa được cấu hình", nil)
	ErrInvalidAmount   = shared.Validation("PAY002", "Số tiền thanh toán không hợp lệ")
	ErrAlreadyPaid     = shared.Conflict("PAY003", "Đơn hàng đã được thanh toán")
)
