package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OrderCreated              = "order.created"
	OrderStatusChanged        = "order.status_changed"
	OrderPaymentStatusChanged = "order.payment_status_changed"
	OrderCancelRequested      = "order.cancel_requested"
	OrderCancelRejected       = "order.cancel_rejected"
	OrderCancelled            = "order.cancelled"
	OrderDeleted              = "order.deleted"
)

// OrderEvent được publish sau khi transaction của order commit
type OrderEvent struct {
	EventID       string          `json:"eventId"`
	Type          string          `json:"type"`
	OrderID       int64           `json:"orderId"`
	UserID        int64           `json:"userId"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

func NewOrderEvent(eventType string, orderID, userID int64, status, paymentStatus string, total decimal.Decimal) OrderEvent {
	return OrderEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		OrderID:       orderID,
		UserID:        userID,
		Status:        status,
		PaymentStatus: paymentStatus,
		TotalAmount:   total,
		OccurredAt:    time.Now().UTC(),
	}
}
