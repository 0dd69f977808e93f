package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/domains/catalog/repository"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/cache"
	"foodee-backend/pkg/database"
	"foodee-backend/pkg/logger"
)

const (
	productCacheTTL     = 5 * time.Minute
	productListCacheKey = "products:all"
	productCachePattern = "product*"
)

func productCacheKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

type productService struct {
	repo      repository.ProductRepository
	typeRepo  repository.ProductTypeRepository
	catRepo   repository.CategoryRepository
	txManager database.TxManager
	cache     cache.Cache
	storage   ImageStorage // nil khi chưa cấu hình MinIO
	images    ImageProcessor
}

func NewProductService(
	repo repository.ProductRepository,
	typeRepo repository.ProductTypeRepository,
	catRepo repository.CategoryRepository,
	txManager database.TxManager,
	cache cache.Cache,
	storage ImageStorage,
	images ImageProcessor,
) ProductService {
	return &productService{
		repo:      repo,
		typeRepo:  typeRepo,
		catRepo:   catRepo,
		txManager: txManager,
		cache:     cache,
		storage:   storage,
		images:    images,
	}
}

// ========================================
// READ (cache 5 phút)
// ========================================

func (s *productService) ListProducts(ctx context.Context) ([]model.ProductDTO, error) {
	var cached []model.ProductDTO
	if s.cacheGet(ctx, productListCacheKey, &cached) {
		return cached, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	dtos := model.ToProductDTOs(products)
	s.cacheSet(ctx, productListCacheKey, dtos)
	return dtos, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*model.ProductDTO, error) {
	var cached model.ProductDTO
	if s.cacheGet(ctx, productCacheKey(id), &cached) {
		return &cached, nil
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := p.ToDTO()
	s.cacheSet(ctx, productCacheKey(id), dto)
	return &dto, nil
}

func (s *productService) SearchProducts(ctx context.Context, name string) ([]model.ProductDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptySearchName
	}

	products, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return model.ToProductDTOs(products), nil
}

func (s *productService) ListByProductType(ctx context.Context, productTypeID int64) ([]model.ProductDTO, error) {
	if _, err := s.typeRepo.FindByID(ctx, productTypeID); err != nil {
		return nil, err
	}
	products, err := s.repo.ListByProductType(ctx, productTypeID)
	if err != nil {
		return nil, fmt.Errorf("list products by type: %w", err)
	}
	return model.ToProductDTOs(products), nil
}

func (s *productService) ListByCategory(ctx context.Context, categoryID int64) ([]model.ProductDTO, error) {
	if _, err := s.catRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	products, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return model.ToProductDTOs(products), nil
}

// ========================================
// WRITE (admin)
// ========================================

func (s *productService) CreateProduct(ctx context.Context, p shared.Principal, req model.ProductRequest) (*model.ProductDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return nil, err
	}

	product := &model.Product{}
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, req, 0); err != nil {
			return err
		}
		applyRequest(product, req)
		if err := s.repo.Create(ctx, product); err != nil {
			return err
		}
		// đọc lại để có tên loại / danh mục
		saved, err := s.repo.FindByID(ctx, product.ID)
		if err != nil {
			return err
		}
		product = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	logger.Info("Product created", map[string]interface{}{"product_id": product.ID, "name": product.Name})

	dto := product.ToDTO()
	return &dto, nil
}

func (s *productService) UpdateProduct(ctx context.Context, p shared.Principal, id int64, req model.ProductRequest) (*model.ProductDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return nil, err
	}

	var product *model.Product
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.checkReferences(ctx, req, id); err != nil {
			return err
		}

		applyRequest(existing, req)
		if err := s.repo.Update(ctx, existing); err != nil {
			return err
		}
		product, err = s.repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	dto := product.ToDTO()
	return &dto, nil
}

func (s *productService) DeleteProduct(ctx context.Context, p shared.Principal, id int64) error {
	if err := shared.RequireAdmin(p); err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)

	if existing.ImageURL != "" && s.storage != nil {
		if err := s.storage.DeleteByURL(ctx, existing.ImageURL); err != nil {
			logger.Warn("Failed to delete product image", map[string]interface{}{
				"product_id": id,
				"error":      err.Error(),
			})
		}
	}
	return nil
}

// UploadImage: validate → resize → upload MinIO → cập nhật image_url
func (s *productService) UploadImage(ctx context.Context, p shared.Principal, id int64, data []byte) (*model.ProductDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	if s.storage == nil || s.images == nil {
		return nil, model.ErrImageStorageDisabled
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.images.ValidateImage(data); err != nil {
		return nil, model.ErrInvalidImage.Wrap(err)
	}
	processed, err := s.images.Process(data)
	if err != nil {
		return nil, model.ErrInvalidImage.Wrap(err)
	}

	key := fmt.Sprintf("products/%d/%s.jpg", id, uuid.NewString())
	url, err := s.storage.Upload(ctx, key, processed, "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("upload product image: %w", err)
	}

	if err := s.repo.UpdateImage(ctx, id, url); err != nil {
		_ = s.storage.DeleteByURL(ctx, url)
		return nil, err
	}
	s.invalidate(ctx)

	if existing.ImageURL != "" {
		if err := s.storage.DeleteByURL(ctx, existing.ImageURL); err != nil {
			logger.Warn("Failed to delete old product image", map[string]interface{}{
				"product_id": id,
				"error":      err.Error(),
			})
		}
	}

	existing.ImageURL = url
	dto := existing.ToDTO()
	return &dto, nil
}

// ========================================
// HELPERS
// ========================================

// checkReferences: tên chưa dùng, loại sản phẩm và danh mục tồn tại
func (s *productService) checkReferences(ctx context.Context, req model.ProductRequest, excludeID int64) error {
	exists, err := s.repo.ExistsByName(ctx, strings.TrimSpace(req.Name), excludeID)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrProductNameExists
	}
	if _, err := s.typeRepo.FindByID(ctx, req.ProductTypeID); err != nil {
		return err
	}
	if req.CategoryID != nil {
		if _, err := s.catRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

func applyRequest(p *model.Product, req model.ProductRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.Description = req.Description
	p.OriginalPrice = req.OriginalPrice
	p.DiscountedPrice = req.DiscountedPrice
	p.Status = model.ProductStatus(req.Status)
	p.ProductTypeID = req.ProductTypeID
	p.CategoryID = req.CategoryID
	if req.Img != "" {
		p.ImageURL = req.Img
	}
}

// Lỗi cache chỉ log, không làm fail request
func (s *productService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		logger.Warn("Cache GET failed", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}
	return found
}

func (s *productService) cacheSet(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, productCacheTTL); err != nil {
		logger.Warn("Cache SET failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (s *productService) invalidate(ctx context.Context) {
	invalidateProducts(ctx, s.cache)
}
