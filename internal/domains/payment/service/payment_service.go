package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	order "foodee-backend/internal/domains/order/model"
	"foodee-backend/internal/domains/payment/gateway/vnpay"
	"foodee-backend/internal/domains/payment/model"
	"foodee-backend/internal/infrastructure/events"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/database"
	"foodee-backend/pkg/logger"
)

type paymentService struct {
	orders         OrderStore
	gateway        Gateway
	txManager      database.TxManager
	publisher      events.OrderEventPublisher
	verifyCallback bool
}

// NewPaymentService: gateway nil khi chưa cấu hình VNPay
func NewPaymentService(
	orders OrderStore,
	gateway Gateway,
	txManager database.TxManager,
	publisher events.OrderEventPublisher,
	verifyCallback bool,
) ServiceInterface {
	return &paymentService{
		orders:         orders,
		gateway:        gateway,
		txManager:      txManager,
		publisher:      publisher,
		verifyCallback: verifyCallback,
	}
}

func (s *paymentService) CreatePaymentURL(ctx context.Context, p shared.Principal, orderID int64, clientIP string) (*model.PaymentURLResponse, error) {
	if s.gateway == nil {
		return nil, model.ErrGatewayDisabled
	}

	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(o.UserID) {
		return nil, order.ErrOrderAccessDenied
	}
	if o.PaymentStatus == order.PaymentStatusPaid {
		return nil, model.ErrAlreadyPaid
	}
	if o.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, model.ErrInvalidAmount
	}

	paymentURL, err := s.gateway.CreatePaymentURL(vnpay.PaymentRequest{
		TxnRef:    strconv.FormatInt(o.ID, 10),
		Amount:    o.TotalAmount,
		OrderInfo: fmt.Sprintf("Thanh toan don hang #%d", o.ID),
		ClientIP:  clientIP,
	})
	if err != nil {
		return nil, shared.Internal("PAY500", "Không tạo được URL thanh toán", err)
	}

	logger.Info("VNPay payment URL created", map[string]interface{}{
		"order_id":  o.ID,
		"user_id":   p.UserID,
		"amount":    o.TotalAmount.String(),
		"client_ip": clientIP,
	})

	return &model.PaymentURLResponse{OrderID: o.ID, PaymentURL: paymentURL}, nil
}

func (s *paymentService) HandleCallback(ctx context.Context, params map[string]string) bool {
	result := vnpay.ParseCallback(params)

	if result.TxnRef == "" {
		logger.Warn("VNPay callback without vnp_TxnRef", nil)
		return false
	}
	orderID, err := strconv.ParseInt(result.TxnRef, 10, 64)
	if err != nil {
		logger.Warn("VNPay callback with non-numeric vnp_TxnRef", map[string]interface{}{"txn_ref": result.TxnRef})
		return false
	}

	if s.verifyCallback {
		if s.gateway == nil || !s.gateway.VerifyCallback(params) {
			logger.Warn("VNPay callback signature mismatch", map[string]interface{}{"order_id": orderID})
			return false
		}
	}

	var updated *order.Order
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		o, err := s.orders.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		o.ApplyPaymentResult(result.IsSuccess())
		if err := s.orders.UpdateStatuses(ctx, o.ID, o.Status, o.PaymentStatus); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		logger.Warn("VNPay callback rejected", map[string]interface{}{
			"order_id": orderID,
			"error":    err.Error(),
		})
		return false
	}

	logger.Info("VNPay callback processed", map[string]interface{}{
		"order_id":       orderID,
		"response_code":  result.ResponseCode,
		"response":       vnpay.ResponseMessage(result.ResponseCode),
		"transaction_no": result.TransactionNo,
		"payment_status": updated.PaymentStatus,
		"order_status":   updated.Status,
	})
	s.publish(ctx, updated)
	return true
}

func (s *paymentService) publish(ctx context.Context, o *order.Order) {
	if s.publisher == nil {
		return
	}
	event := events.NewOrderEvent(events.OrderPaymentStatusChanged, o.ID, o.UserID, string(o.Status), string(o.PaymentStatus), o.TotalAmount)
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish payment event", map[string]interface{}{
			"order_id": o.ID,
			"error":    err.Error(),
		})
	}
}
