package service

import (
	"context"
	"strings"

	"foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/domains/catalog/repository"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/cache"
	"foodee-backend/pkg/logger"
)

// ========================================
// PRODUCT TYPES
// ========================================

type productTypeService struct {
	repo        repository.ProductTypeRepository
	productRepo repository.ProductRepository
	cache       cache.Cache
}

func NewProductTypeService(
	repo repository.ProductTypeRepository,
	productRepo repository.ProductRepository,
	cache cache.Cache,
) ProductTypeService {
	return &productTypeService{repo: repo, productRepo: productRepo, cache: cache}
}

func (s *productTypeService) List(ctx context.Context) ([]model.ProductType, error) {
	return s.repo.List(ctx)
}

func (s *productTypeService) Get(ctx context.Context, id int64) (*model.ProductType, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productTypeService) Stats(ctx context.Context) ([]model.ProductTypeStat, error) {
	return s.productRepo.CountByProductType(ctx)
}

func (s *productTypeService) Create(ctx context.Context, p shared.Principal, req model.NamedRequest) (*model.ProductType, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := shared.ValidationFailed(req.Validate("Tên loại sản phẩm không được để trống")); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.repo.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrProductTypeExists
	}

	pt := &model.ProductType{Name: name, Description: req.Description}
	if err := s.repo.Create(ctx, pt); err != nil {
		return nil, err
	}
	return pt, nil
}

func (s *productTypeService) Update(ctx context.Context, p shared.Principal, id int64, req model.NamedRequest) (*model.ProductType, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := shared.ValidationFailed(req.Validate("Tên loại sản phẩm không được để trống")); err != nil {
		return nil, err
	}

	pt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.repo.ExistsByName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrProductTypeExists
	}

	pt.Name = name
	pt.Description = req.Description
	if err := s.repo.Update(ctx, pt); err != nil {
		return nil, err
	}
	// sản phẩm cache có tên loại
	invalidateProducts(ctx, s.cache)
	return pt, nil
}

func (s *productTypeService) Delete(ctx context.Context, p shared.Principal, id int64) error {
	if err := shared.RequireAdmin(p); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ========================================
// CATEGORIES
// ========================================

type categoryService struct {
	repo  repository.CategoryRepository
	cache cache.Cache
}

func NewCategoryService(repo repository.CategoryRepository, cache cache.Cache) CategoryService {
	return &categoryService{repo: repo, cache: cache}
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, p shared.Principal, req model.NamedRequest) (*model.Category, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := shared.ValidationFailed(req.Validate("Tên danh mục không được để trống")); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.repo.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrCategoryExists
	}

	c := &model.Category{Name: name, Description: req.Description}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, p shared.Principal, id int64, req model.NamedRequest) (*model.Category, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := shared.ValidationFailed(req.Validate("Tên danh mục không được để trống")); err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.repo.ExistsByName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrCategoryExists
	}

	c.Name = name
	c.Description = req.Description
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	invalidateProducts(ctx, s.cache)
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, p shared.Principal, id int64) error {
	if err := shared.RequireAdmin(p); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func invalidateProducts(ctx context.Context, c cache.Cache) {
	if err := c.DeletePattern(ctx, productCachePattern); err != nil {
		logger.Warn("Failed to invalidate product cache", map[string]interface{}{"error": err.Error()})
	}
}
