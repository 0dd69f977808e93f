package service

import (
	"context"

	"foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/shared"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]model.ProductDTO, error)
	GetProduct(ctx context.Context, id int64) (*model.ProductDTO, error)
	SearchProducts(ctx context.Context, name string) ([]model.ProductDTO, error)
	ListByProductType(ctx context.Context, productTypeID int64) ([]model.ProductDTO, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.ProductDTO, error)

	CreateProduct(ctx context.Context, p shared.Principal, req model.ProductRequest) (*model.ProductDTO, error)
	UpdateProduct(ctx context.Context, p shared.Principal, id int64, req model.ProductRequest) (*model.ProductDTO, error)
	DeleteProduct(ctx context.Context, p shared.Principal, id int64) error
	UploadImage(ctx context.Context, p shared.Principal, id int64, data []byte) (*model.ProductDTO, error)
}

type ProductTypeService interface {
	List(ctx context.Context) ([]model.ProductType, error)
	Get(ctx context.Context, id int64) (*model.ProductType, error)
	Stats(ctx context.Context) ([]model.ProductTypeStat, error)
	Create(ctx context.Context, p shared.Principal, req model.NamedRequest) (*model.ProductType, error)
	Update(ctx context.Context, p shared.Principal, id int64, req model.NamedRequest) (*model.ProductType, error)
	Delete(ctx context.Context, p shared.Principal, id int64) error
}

type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, p shared.Principal, req model.NamedRequest) (*model.Category, error)
	Update(ctx context.Context, p shared.Principal, id int64, req model.NamedRequest) (*model.Category, error)
	Delete(ctx context.Context, p shared.Principal, id int64) error
}

// ImageStorage - phần của MinIOStorage mà upload ảnh cần
type ImageStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteByURL(ctx context.Context, url string) error
}

// ImageProcessor - validate + resize trước khi upload
type ImageProcessor interface {
	ValidateImage(data []byte) error
	Process(data []byte) ([]byte, error)
}
