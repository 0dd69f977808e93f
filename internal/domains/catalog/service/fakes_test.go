package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"foodee-backend/internal/domains/catalog/model"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]*model.Product
	types    *fakeTypeRepo
	cats     *fakeCategoryRepo
	reads    int
}

func newFakeProductRepo(types *fakeTypeRepo, cats *fakeCategoryRepo) *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*model.Product{}, types: types, cats: cats}
}

// withNames giả lập join lấy tên loại / danh mục
func (r *fakeProductRepo) withNames(p model.Product) model.Product {
	if pt, ok := r.types.items[p.ProductTypeID]; ok {
		p.ProductTypeName = pt.Name
	}
	p.CategoryName = ""
	if p.CategoryID != nil {
		if c, ok := r.cats.items[*p.CategoryID]; ok {
			p.CategoryName = c.Name
		}
	}
	return p
}

func (r *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return model.ErrProductNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateImage(_ context.Context, id int64, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return model.ErrProductNotFound
	}
	p.ImageURL = url
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return model.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id int64) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	p, ok := r.products[id]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	cp := r.withNames(*p)
	return &cp, nil
}

func (r *fakeProductRepo) filter(pred func(*model.Product) bool) []model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	out := []model.Product{}
	for _, p := range r.products {
		if pred(p) {
			out = append(out, r.withNames(*p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeProductRepo) List(context.Context) ([]model.Product, error) {
	return r.filter(func(*model.Product) bool { return true }), nil
}

func (r *fakeProductRepo) ListByStatus(_ context.Context, s model.ProductStatus) ([]model.Product, error) {
	return r.filter(func(p *model.Product) bool { return p.Status == s }), nil
}

func (r *fakeProductRepo) ListByProductType(_ context.Context, id int64) ([]model.Product, error) {
	return r.filter(func(p *model.Product) bool { return p.ProductTypeID == id }), nil
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, id int64) ([]model.Product, error) {
	return r.filter(func(p *model.Product) bool { return p.CategoryID != nil && *p.CategoryID == id }), nil
}

func (r *fakeProductRepo) SearchByName(_ context.Context, name string) ([]model.Product, error) {
	name = strings.ToLower(name)
	return r.filter(func(p *model.Product) bool { return strings.Contains(strings.ToLower(p.Name), name) }), nil
}

func (r *fakeProductRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	return len(r.filter(func(p *model.Product) bool { return p.Name == name && p.ID != excludeID })) > 0, nil
}

func (r *fakeProductRepo) CountByProductType(context.Context) ([]model.ProductTypeStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := []model.ProductTypeStat{}
	for _, pt := range r.types.items {
		var n int64
		for _, p := range r.products {
			if p.ProductTypeID == pt.ID {
				n++
			}
		}
		stats = append(stats, model.ProductTypeStat{Name: pt.Name, TotalProducts: n})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats, nil
}

// fakeTypeRepo / fakeCategoryRepo dùng chung logic
type fakeNamed struct {
	nextID   int64
	items    map[int64]*model.ProductType
	notFound error
	inUse    func(id int64) bool
	inUseErr error
}

func (r *fakeNamed) create(name, desc string) int64 {
	r.nextID++
	r.items[r.nextID] = &model.ProductType{ID: r.nextID, Name: name, Description: desc}
	return r.nextID
}

func (r *fakeNamed) update(id int64, name, desc string) error {
	it, ok := r.items[id]
	if !ok {
		return r.notFound
	}
	it.Name, it.Description = name, desc
	return nil
}

func (r *fakeNamed) delete(id int64) error {
	if _, ok := r.items[id]; !ok {
		return r.notFound
	}
	if r.inUse != nil && r.inUse(id) {
		return r.inUseErr
	}
	delete(r.items, id)
	return nil
}

func (r *fakeNamed) find(id int64) (*model.ProductType, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, r.notFound
	}
	cp := *it
	return &cp, nil
}

func (r *fakeNamed) list() []model.ProductType {
	out := []model.ProductType{}
	for _, it := range r.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeNamed) exists(name string, excludeID int64) bool {
	for _, it := range r.items {
		if strings.EqualFold(it.Name, name) && it.ID != excludeID {
			return true
		}
	}
	return false
}

type fakeTypeRepo struct{ fakeNamed }

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{fakeNamed{
		items: map[int64]*model.ProductType{}, notFound: model.ErrProductTypeNotFound, inUseErr: model.ErrProductTypeInUse,
	}}
}

func (r *fakeTypeRepo) Create(_ context.Context, pt *model.ProductType) error {
	pt.ID = r.create(pt.Name, pt.Description)
	return nil
}
func (r *fakeTypeRepo) Update(_ context.Context, pt *model.ProductType) error {
	return r.update(pt.ID, pt.Name, pt.Description)
}
func (r *fakeTypeRepo) Delete(_ context.Context, id int64) error { return r.delete(id) }
func (r *fakeTypeRepo) FindByID(_ context.Context, id int64) (*model.ProductType, error) {
	return r.find(id)
}
func (r *fakeTypeRepo) List(context.Context) ([]model.ProductType, error) { return r.list(), nil }
func (r *fakeTypeRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	return r.exists(name, excludeID), nil
}

type fakeCategoryRepo struct{ fakeNamed }

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{fakeNamed{
		items: map[int64]*model.ProductType{}, notFound: model.ErrCategoryNotFound, inUseErr: model.ErrCategoryInUse,
	}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *model.Category) error {
	c.ID = r.create(c.Name, c.Description)
	return nil
}
func (r *fakeCategoryRepo) Update(_ context.Context, c *model.Category) error {
	return r.update(c.ID, c.Name, c.Description)
}
func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) error { return r.delete(id) }
func (r *fakeCategoryRepo) FindByID(_ context.Context, id int64) (*model.Category, error) {
	it, err := r.find(id)
	if err != nil {
		return nil, err
	}
	return &model.Category{ID: it.ID, Name: it.Name, Description: it.Description}, nil
}
func (r *fakeCategoryRepo) List(context.Context) ([]model.Category, error) {
	out := []model.Category{}
	for _, it := range r.list() {
		out = append(out, model.Category{ID: it.ID, Name: it.Name, Description: it.Description})
	}
	return out, nil
}
func (r *fakeCategoryRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	return r.exists(name, excludeID), nil
}

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (s *fakeStorage) Upload(_ context.Context, key string, _ []byte, _ string) (string, error) {
	s.uploaded = append(s.uploaded, key)
	return "http://minio.local/foodee/" + key, nil
}

func (s *fakeStorage) DeleteByURL(_ context.Context, url string) error {
	s.deleted = append(s.deleted, url)
	return nil
}

type fakeImages struct{ invalid bool }

func (f fakeImages) ValidateImage([]byte) error {
	if f.invalid {
		return errors.New("unsupported format")
	}
	return nil
}

func (f fakeImages) Process(data []byte) ([]byte, error) { return data, nil }
