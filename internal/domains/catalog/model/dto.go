package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	OriginalPrice   decimal.Decimal `json:"originalPrice"`
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
	Discount        int64           `json:"discount"`
	ProductTypeID   int64           `json:"productTypeId"`
	ProductTypeName string          `json:"productTypeName"`
	Img             string          `json:"img"`
	Status          string          `json:"status"`
	CategoryID      *int64          `json:"categoryId"`
	CategoryName    string          `json:"categoryName"`
}

// ProductRequest dùng cho cả create và update
type ProductRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	OriginalPrice   decimal.Decimal `json:"originalPrice"`
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
	ProductTypeID   int64           `json:"productTypeId"`
	CategoryID      *int64          `json:"categoryId"`
	Img             string          `json:"img"`
	Status          string          `json:"status"`
}

func (r ProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Tên sản phẩm không được để trống"),
			validation.RuneLength(0, 150).Error("Tên sản phẩm tối đa 150 ký tự"),
		),
		validation.Field(&r.ProductTypeID,
			validation.Required.Error("ID loại sản phẩm không được để trống"),
			validation.Min(int64(1)).Error("ID loại sản phẩm không hợp lệ"),
		),
		validation.Field(&r.Status,
			validation.Required.Error("Trạng thái không được để trống"),
			validation.By(func(v interface{}) error {
				if !ProductStatus(v.(string)).IsValid() {
					return errors.New("Trạng thái không hợp lệ. Phải là một trong: AVAILABLE, OUT_OF_STOCK, DISCONTINUED")
				}
				return nil
			}),
		),
		validation.Field(&r.OriginalPrice, validation.By(func(interface{}) error {
			if !r.OriginalPrice.GreaterThan(decimal.Zero) {
				return errors.New("Giá gốc phải lớn hơn 0")
			}
			return nil
		})),
		validation.Field(&r.DiscountedPrice, validation.By(func(interface{}) error {
			if r.DiscountedPrice.IsNegative() {
				return errors.New("Giá giảm không được âm")
			}
			if r.DiscountedPrice.IsPositive() && r.DiscountedPrice.GreaterThanOrEqual(r.OriginalPrice) {
				return errors.New("Giá giảm phải nhỏ hơn giá gốc")
			}
			return nil
		})),
		validation.Field(&r.CategoryID, validation.When(r.CategoryID != nil,
			validation.Min(int64(1)).Error("ID danh mục không hợp lệ"),
		)),
		validation.Field(&r.Img, validation.RuneLength(0, 500)),
	)
}

// NamedRequest - body của product type và category
type NamedRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r NamedRequest) Validate(emptyNameMsg string) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error(emptyNameMsg),
			validation.RuneLength(0, 100).Error("Tên tối đa 100 ký tự"),
		),
	)
}
