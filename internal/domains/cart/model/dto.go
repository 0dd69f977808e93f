package model

import "github.com/shopspring/decimal"

type CartItemDTO struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type CartDTO struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"userId"`
	CartItems  []CartItemDTO   `json:"cartItems"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func (c *Cart) ToDTO() CartDTO {
	items := make([]CartItemDTO, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItemDTO{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			ProductImage: it.ProductImage,
			Price:        it.UnitPrice,
			Quantity:     it.Quantity,
			Subtotal:     it.Subtotal,
		})
	}
	return CartDTO{
		ID:         c.ID,
		UserID:     c.UserID,
		CartItems:  items,
		TotalItems: c.TotalQuantity(),
		TotalPrice: c.TotalAmount(),
	}
}
