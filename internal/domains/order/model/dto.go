package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest - đặt hàng từ giỏ
type CreateOrderRequest struct {
	DeliveryAddress string `json:"deliveryAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DeliveryAddress,
			validation.Required.Error("Địa chỉ giao hàng không được để trống"),
			validation.RuneLength(0, 255).Error("Địa chỉ giao hàng không được vượt quá 255 ký tự"),
		),
		validation.Field(&r.PaymentMethod,
			validation.Required.Error("Hình thức thanh toán không được để trống"),
		),
	)
}

// CreateFromProductRequest - mua ngay một sản phẩm, không đụng tới giỏ
type CreateFromProductRequest struct {
	ProductID       int64  `json:"productId"`
	Quantity        int    `json:"quantity"`
	DeliveryAddress string `json:"deliveryAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

func (r CreateFromProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID,
			validation.Required.Error("ID sản phẩm phải lớn hơn 0"),
			validation.Min(int64(1)).Error("ID sản phẩm phải lớn hơn 0"),
		),
		validation.Field(&r.DeliveryAddress,
			validation.Required.Error("Địa chỉ giao hàng không được để trống"),
			validation.RuneLength(0, 255).Error("Địa chỉ giao hàng không được vượt quá 255 ký tự"),
		),
		validation.Field(&r.PaymentMethod,
			validation.Required.Error("Hình thức thanh toán không được để trống"),
		),
	)
}

type DeliveryDateRequest struct {
	DeliveryDate string `json:"deliveryDate"`
}

// deliveryDateLayouts: RFC3339 hoặc giờ địa phương không kèm múi giờ
var deliveryDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Parse trả về nil, nil khi bỏ trống
// Chuỗi không có múi giờ được hiểu theo loc
func (r DeliveryDateRequest) Parse(loc *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(r.DeliveryDate)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	for _, layout := range deliveryDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return &t, nil
		}
	}
	return nil, ErrInvalidDeliveryDate
}

type OrderItemDTO struct {
	ID           int64           `json:"id"`
	ProductID    *int64          `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type OrderDTO struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	FullName        string          `json:"fullname"`
	Email           string          `json:"email"`
	PhoneNumber     string          `json:"phoneNumber"`
	DeliveryAddress string          `json:"deliveryAddress"`
	OrderDate       time.Time       `json:"orderDate"`
	DeliveryDate    *time.Time      `json:"deliveryDate"`
	PaymentStatus   string          `json:"paymentStatus"`
	OrderStatus     string          `json:"orderStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	OrderItems      []OrderItemDTO  `json:"orderItems"`
}

func (o *Order) ToDTO() OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemDTO{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			ProductImage: it.ProductImage,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Subtotal:     it.Subtotal,
		})
	}
	return OrderDTO{
		ID:              o.ID,
		UserID:          o.UserID,
		FullName:        o.FullName,
		Email:           o.Email,
		PhoneNumber:     o.PhoneNumber,
		DeliveryAddress: o.DeliveryAddress,
		OrderDate:       o.OrderDate,
		DeliveryDate:    o.DeliveryDate,
		PaymentStatus:   string(o.PaymentStatus),
		OrderStatus:     string(o.Status),
		PaymentMethod:   string(o.PaymentMethod),
		TotalAmount:     o.TotalAmount,
		OrderItems:      items,
	}
}

func ToOrderDTOs(orders []Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, orders[i].ToDTO())
	}
	return dtos
}
