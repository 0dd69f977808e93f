package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductAvailable    ProductStatus = "AVAILABLE"
	ProductOutOfStock   ProductStatus = "OUT_OF_STOCK"
	ProductDiscontinued ProductStatus = "DISCONTINUED"
)

func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductAvailable, ProductOutOfStock, ProductDiscontinued:
		return true
	}
	return false
}

// Product - món ăn, kèm tên loại / danh mục khi đọc ra (join)
type Product struct {
	ID              int64
	Name            string
	Description     string
	ImageURL        string
	OriginalPrice   decimal.Decimal
	DiscountedPrice decimal.Decimal // 0 = không giảm giá
	Status          ProductStatus
	ProductTypeID   int64
	ProductTypeName string
	CategoryID      *int64
	CategoryName    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EffectivePrice là đơn giá dùng cho giỏ hàng và đơn hàng
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountedPrice.GreaterThan(decimal.Zero) {
		return p.DiscountedPrice
	}
	return p.OriginalPrice
}

func (p *Product) IsAvailable() bool {
	return p.Status == ProductAvailable
}

// DiscountPercent - phần trăm giảm, làm tròn tới số nguyên
func (p *Product) DiscountPercent() int64 {
	if !p.DiscountedPrice.GreaterThan(decimal.Zero) || !p.OriginalPrice.GreaterThan(decimal.Zero) {
		return 0
	}
	return p.OriginalPrice.Sub(p.DiscountedPrice).
		Div(p.OriginalPrice).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

func (p *Product) ToDTO() ProductDTO {
	return ProductDTO{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		OriginalPrice:   p.OriginalPrice,
		DiscountedPrice: p.DiscountedPrice,
		Discount:        p.DiscountPercent(),
		ProductTypeID:   p.ProductTypeID,
		ProductTypeName: p.ProductTypeName,
		Img:             p.ImageURL,
		Status:          string(p.Status),
		CategoryID:      p.CategoryID,
		CategoryName:    p.CategoryName,
	}
}

func ToProductDTOs(products []Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, products[i].ToDTO())
	}
	return dtos
}

// ProductType - loại món (Món chính, Đồ uống...)
type ProductType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category - danh mục (Món Việt, Món Âu...)
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductTypeStat - số món theo từng loại
type ProductTypeStat struct {
	Name          string `json:"name"`
	TotalProducts int64  `json:"totalProducts"`
}
