package service

import (
	"context"
	"time"

	"foodee-backend/internal/domains/order/model"
	"foodee-backend/internal/domains/order/repository"
	"foodee-backend/internal/infrastructure/events"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/database"
	"foodee-backend/pkg/logger"
)

type orderService struct {
	repo      repository.OrderRepository
	carts     CartStore
	products  ProductReader
	users     UserReader
	txManager database.TxManager
	publisher events.OrderEventPublisher
	now       func() time.Time
}

type Option func(*orderService)

func WithClock(now func() time.Time) Option {
	return func(s *orderService) { s.now = now }
}

func NewOrderService(
	repo repository.OrderRepository,
	carts CartStore,
	products ProductReader,
	users UserReader,
	txManager database.TxManager,
	publisher events.OrderEventPublisher,
	opts ...Option,
) ServiceInterface {
	s := &orderService{
		repo:      repo,
		carts:     carts,
		products:  products,
		users:     users,
		txManager: txManager,
		publisher: publisher,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// =====================================================
// CREATE
// =====================================================

// CreateOrderFromCart: một transaction gồm order, items, payment và xóa giỏ
// Giỏ bị khóa trước khi đọc nên hai lần checkout song song chỉ tạo một đơn
func (s *orderService) CreateOrderFromCart(ctx context.Context, p shared.Principal, req model.CreateOrderRequest) (*model.OrderDTO, error) {
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return nil, err
	}
	method, err := model.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var order *model.Order
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.carts.LockByUserID(ctx, p.UserID); err != nil {
			return err
		}
		c, err := s.carts.FindByUserID(ctx, p.UserID)
		if err != nil {
			return err
		}
		if c.IsEmpty() {
			return model.ErrCartEmpty
		}

		order, err = s.newOrder(ctx, p.UserID, req.DeliveryAddress, method)
		if err != nil {
			return err
		}
		for _, ci := range c.Items {
			product, err := s.products.FindByID(ctx, ci.ProductID)
			if err != nil {
				return err
			}
			order.Items = append(order.Items, model.NewOrderItem(
				product.ID, product.Name, product.ImageURL, product.EffectivePrice(), ci.Quantity,
			))
		}

		if err := s.persist(ctx, order); err != nil {
			return err
		}
		_, err = s.carts.ClearItems(ctx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Order created from cart", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  p.UserID,
		"items":    len(order.Items),
		"total":    order.TotalAmount.String(),
	})
	s.publish(ctx, events.OrderCreated, order)

	dto := order.ToDTO()
	return &dto, nil
}

// CreateOrderFromProduct: đơn một sản phẩm, giỏ hàng giữ nguyên
func (s *orderService) CreateOrderFromProduct(ctx context.Context, p shared.Principal, req model.CreateFromProductRequest) (*model.OrderDTO, error) {
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}
	method, err := model.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var order *model.Order
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		product, err := s.products.FindByID(ctx, req.ProductID)
		if err != nil {
			return err
		}
		if !product.IsAvailable() {
			return model.ErrProductNotOrderable
		}

		order, err = s.newOrder(ctx, p.UserID, req.DeliveryAddress, method)
		if err != nil {
			return err
		}
		order.Items = append(order.Items, model.NewOrderItem(
			product.ID, product.Name, product.ImageURL, product.EffectivePrice(), req.Quantity,
		))
		return s.persist(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Order created from product", map[string]interface{}{
		"order_id":   order.ID,
		"user_id":    p.UserID,
		"product_id": req.ProductID,
		"total":      order.TotalAmount.String(),
	})
	s.publish(ctx, events.OrderCreated, order)

	dto := order.ToDTO()
	return &dto, nil
}

// newOrder chụp thông tin liên hệ của user vào đơn
func (s *orderService) newOrder(ctx context.Context, userID int64, address string, method model.PaymentMethod) (*model.Order, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.Order{
		UserID:          u.ID,
		FullName:        u.FullName,
		Email:           u.Email,
		PhoneNumber:     u.PhoneNumber,
		DeliveryAddress: address,
		OrderDate:       s.now(),
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		PaymentMethod:   method,
	}, nil
}

func (s *orderService) persist(ctx context.Context, order *model.Order) error {
	order.TotalAmount = order.CalculateTotal()
	if err := s.repo.Create(ctx, order); err != nil {
		return err
	}
	return s.repo.CreatePayment(ctx, &model.Payment{OrderID: order.ID, Method: order.PaymentMethod})
}

// =====================================================
// READ
// =====================================================

func (s *orderService) GetUserOrders(ctx context.Context, p shared.Principal) ([]model.OrderDTO, error) {
	orders, err := s.repo.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	return model.ToOrderDTOs(orders), nil
}

func (s *orderService) GetAllOrders(ctx context.Context, p shared.Principal) ([]model.OrderDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return model.ToOrderDTOs(orders), nil
}

// =====================================================
// ADMIN UPDATES
// =====================================================

func (s *orderService) UpdateOrderStatus(ctx context.Context, p shared.Principal, orderID int64, status string) (*model.OrderDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	newStatus, err := model.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	order, err := s.mutate(ctx, orderID, func(ctx context.Context, o *model.Order) error {
		old := o.Status
		o.Status = newStatus
		if err := s.repo.UpdateStatus(ctx, o.ID, newStatus); err != nil {
			return err
		}
		logger.Info("Order status overridden by admin", map[string]interface{}{
			"order_id":   o.ID,
			"admin_id":   p.UserID,
			"old_status": old,
			"new_status": newStatus,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.OrderStatusChanged, order)
	return toDTO(order), nil
}

func (s *orderService) UpdatePaymentStatus(ctx context.Context, p shared.Principal, orderID int64, status string) (*model.OrderDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	newStatus, err := model.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}

	order, err := s.mutate(ctx, orderID, func(ctx context.Context, o *model.Order) error {
		o.PaymentStatus = newStatus
		return s.repo.UpdatePaymentStatus(ctx, o.ID, newStatus)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.OrderPaymentStatusChanged, order)
	return toDTO(order), nil
}

func (s *orderService) UpdateDeliveryDate(ctx context.Context, p shared.Principal, orderID int64, deliveryDate *time.Time) (*model.OrderDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	if deliveryDate == nil {
		return nil, model.ErrDeliveryDateRequired
	}
	if deliveryDate.Before(s.now()) {
		return nil, model.ErrDeliveryDateInPast
	}

	order, err := s.mutate(ctx, orderID, func(ctx context.Context, o *model.Order) error {
		o.DeliveryDate = deliveryDate
		return s.repo.UpdateDeliveryDate(ctx, o.ID, *deliveryDate)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(order), nil
}

// =====================================================
// CANCEL FLOW
// =====================================================

// CancelOrder: chủ đơn yêu cầu hủy, admin duyệt sau
func (s *orderService) CancelOrder(ctx context.Context, p shared.Principal, orderID int64) (*model.OrderDTO, error) {
	order, err := s.mutate(ctx, orderID, func(ctx context.Context, o *model.Order) error {
		if !o.IsOwnedBy(p.UserID) {
			return model.ErrNotOrderOwner
		}
		if err := o.RequestCancel(); err != nil {
			return err
		}
		return s.repo.UpdateStatus(ctx, o.ID, o.Status)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.OrderCancelRequested, order)
	return toDTO(order), nil
}

func (s *orderService) ApproveCancel(ctx context.Context, p shared.Principal, orderID int64) (*model.OrderDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}

	order, err := s.mutate(ctx, orderID, func(ctx context.Context, o *model.Order) error {
		if err := o.ApproveCancel(); err != nil {
			return err
		}
		return s.repo.UpdateStatus(ctx, o.ID, o.Status)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.OrderCancelled, order)
	return toDTO(order), nil
}

func (s *orderService) RejectCancel(ctx context.Context, p shared.Principal, orderID int64) (*model.OrderDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}

	order, err := s.mutate(ctx, orderID, func(ctx context.Context, o *model.Order) error {
		if err := o.RejectCancel(); err != nil {
			return err
		}
		return s.repo.UpdateStatus(ctx, o.ID, o.Status)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.OrderCancelRejected, order)
	return toDTO(order), nil
}

// DeleteOrder: chỉ đơn CANCELLED; xóa payment trước rồi tới order
func (s *orderService) DeleteOrder(ctx context.Context, p shared.Principal, orderID int64) error {
	if err := shared.RequireAdmin(p); err != nil {
		return err
	}

	var deleted *model.Order
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		o, err := s.repo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !o.CanBeDeleted() {
			return model.ErrCannotDelete
		}
		if err := s.repo.DeletePayment(ctx, o.ID); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, o.ID); err != nil {
			return err
		}
		deleted = o
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Order deleted", map[string]interface{}{"order_id": orderID, "admin_id": p.UserID})
	s.publish(ctx, events.OrderDeleted, deleted)
	return nil
}

// =====================================================
// HELPERS
// =====================================================

// mutate nạp order và chạy fn trong cùng transaction
func (s *orderService) mutate(ctx context.Context, orderID int64, fn func(ctx context.Context, o *model.Order) error) (*model.Order, error) {
	var order *model.Order
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		o, err := s.repo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := fn(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	return order, err
}

// publish sau commit; lỗi chỉ log, không làm fail request
func (s *orderService) publish(ctx context.Context, eventType string, o *model.Order) {
	if s.publisher == nil {
		return
	}
	event := events.NewOrderEvent(eventType, o.ID, o.UserID, string(o.Status), string(o.PaymentStatus), o.TotalAmount)
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish order event", map[string]interface{}{
			"order_id": o.ID,
			"type":     eventType,
			"error":    err.Error(),
		})
	}
}

func toDTO(o *model.Order) *model.OrderDTO {
	dto := o.ToDTO()
	return &dto
}
