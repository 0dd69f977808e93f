package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus - trạng thái xử lý đơn
type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "PENDING"
	OrderStatusConfirmed       OrderStatus = "CONFIRMED"
	OrderStatusShipping        OrderStatus = "SHIPPING"
	OrderStatusDelivered       OrderStatus = "DELIVERED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
	OrderStatusCancelRequested OrderStatus = "CANCEL_REQUESTED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusCancelRequested:
		return true
	}
	return false
}

// PaymentStatus chạy song song với OrderStatus, không có bảng chuyển trạng thái
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "CASH_ON_DELIVERY"
	PaymentMethodOnline PaymentMethod = "ONLINE_PAYMENT"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodOnline
}

// ParseOrderStatus / ParsePaymentStatus / ParsePaymentMethod không phân biệt hoa thường
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", ErrInvalidOrderStatus
	}
	return s, nil
}

func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	s := PaymentStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return s, nil
}

func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(raw)))
	if !m.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}

// Order - items không đổi sau khi tạo; FullName / Email / PhoneNumber chụp từ user lúc đặt
type Order struct {
	ID              int64
	UserID          int64
	FullName        string
	Email           string
	PhoneNumber     string
	DeliveryAddress string
	OrderDate       time.Time
	DeliveryDate    *time.Time
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	TotalAmount     decimal.Decimal

	// đọc từ bảng payments
	PaymentMethod PaymentMethod
	Items         []OrderItem
}

// OrderItem - ProductID nil khi sản phẩm đã bị xóa
type OrderItem struct {
	ID           int64
	OrderID      int64
	ProductID    *int64
	ProductName  string
	ProductImage string
	Quantity     int
	UnitPrice    decimal.Decimal
	Subtotal     decimal.Decimal
}

// Payment - 1-1 với order, tạo cùng order
type Payment struct {
	ID      int64
	OrderID int64
	Method  PaymentMethod
}

func NewOrderItem(productID int64, name, image string, unitPrice decimal.Decimal, quantity int) OrderItem {
	pid := productID
	return OrderItem{
		ProductID:    &pid,
		ProductName:  name,
		ProductImage: image,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		Subtotal:     unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// CalculateTotal = Σ subtotal
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal)
	}
	return total
}

func (o *Order) IsOwnedBy(userID int64) bool {
	return o.UserID == userID
}

func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}

// CanRequestCancel: chỉ khi đơn đang chờ hoặc đã xác nhận
func (o *Order) CanRequestCancel() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

func (o *Order) IsCancelRequested() bool {
	return o.Status == OrderStatusCancelRequested
}

// CanBeDeleted: chỉ xóa cứng đơn đã hủy
func (o *Order) CanBeDeleted() bool {
	return o.Status == OrderStatusCancelled
}

// RequestCancel: PENDING / CONFIRMED → CANCEL_REQUESTED
func (o *Order) RequestCancel() error {
	if !o.CanRequestCancel() {
		return ErrCannotRequestCancel
	}
	o.Status = OrderStatusCancelRequested
	return nil
}

// ApproveCancel: CANCEL_REQUESTED → CANCELLED
func (o *Order) ApproveCancel() error {
	if !o.IsCancelRequested() {
		return ErrNotCancelRequested
	}
	o.Status = OrderStatusCancelled
	return nil
}

// RejectCancel: CANCEL_REQUESTED → CONFIRMED
func (o *Order) RejectCancel() error {
	if !o.IsCancelRequested() {
		return ErrNotCancelRequested
	}
	o.Status = OrderStatusConfirmed
	return nil
}

// ApplyPaymentResult - kết quả thanh toán online
// thành công: PAID + CONFIRMED; thất bại: FAILED, giữ nguyên trạng thái đơn
func (o *Order) ApplyPaymentResult(success bool) {
	if success {
		o.PaymentStatus = PaymentStatusPaid
		o.Status = OrderStatusConfirmed
		return
	}
	o.PaymentStatus = PaymentStatusFailed
}

// ContainsProduct - dùng khi kiểm tra review
func (o *Order) ContainsProduct(productID int64) bool {
	for _, it := range o.Items {
		if it.ProductID != nil && *it.ProductID == productID {
			return true
		}
	}
	return false
}
