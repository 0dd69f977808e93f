package repository

import (
	"context"

	"foodee-backend/internal/domains/catalog/model"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	UpdateImage(ctx context.Context, id int64, imageURL string) error
	Delete(ctx context.Context, id int64) error

	// FindByID trả về model.ErrProductNotFound nếu không có
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error)
	ListByProductType(ctx context.Context, productTypeID int64) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
	// SearchByName - không phân biệt hoa thường, chứa chuỗi
	SearchByName(ctx context.Context, name string) ([]model.Product, error)

	// ExistsByName bỏ qua sản phẩm excludeID (0 = không loại trừ)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	CountByProductType(ctx context.Context) ([]model.ProductTypeStat, error)
}

type ProductTypeRepository interface {
	Create(ctx context.Context, pt *model.ProductType) error
	Update(ctx context.Context, pt *model.ProductType) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.ProductType, error)
	List(ctx context.Context) ([]model.ProductType, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
}
