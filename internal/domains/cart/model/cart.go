package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart - mỗi user một giỏ, tạo khi thêm món lần đầu
type Cart struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Items     []CartItem
}

// CartItem - duy nhất theo (cart, product)
// UnitPrice, ProductName, ProductImage, ProductStatus lấy từ products khi đọc ra
type CartItem struct {
	ID            int64
	CartID        int64
	ProductID     int64
	Quantity      int
	Subtotal      decimal.Decimal
	ProductName   string
	ProductImage  string
	ProductStatus string
	UnitPrice     decimal.Decimal
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalAmount = tổng subtotal các dòng
func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal)
	}
	return total
}

func (c *Cart) TotalQuantity() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// LineSubtotal = đơn giá hiện tại × số lượng
func LineSubtotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
