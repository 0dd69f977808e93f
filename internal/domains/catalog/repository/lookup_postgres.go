package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodee-backend/internal/domains/catalog/model"
	"foodee-backend/pkg/database"
)

// namedTable dùng chung cho product_types và categories (cùng cấu trúc id, name, description)
type namedTable struct {
	pool      *pgxpool.Pool
	table     string
	notFound  error
	nameTaken func(error) error
	inUse     func(error) error
}

func (t *namedTable) create(ctx context.Context, name, description string) (int64, error) {
	var id int64
	err := database.Conn(ctx, t.pool).QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO %s (name, description) VALUES ($1, $2) RETURNING id`, t.table),
		name, description,
	).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, t.nameTaken(err)
		}
		return 0, fmt.Errorf("insert %s: %w", t.table, err)
	}
	return id, nil
}

func (t *namedTable) update(ctx context.Context, id int64, name, description string) error {
	tag, err := database.Conn(ctx, t.pool).Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET name = $2, description = $3 WHERE id = $1`, t.table),
		id, name, description,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return t.nameTaken(err)
		}
		return fmt.Errorf("update %s: %w", t.table, err)
	}
	if tag.RowsAffected() == 0 {
		return t.notFound
	}
	return nil
}

func (t *namedTable) delete(ctx context.Context, id int64) error {
	tag, err := database.Conn(ctx, t.pool).Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.table), id,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return t.inUse(err)
		}
		return fmt.Errorf("delete %s: %w", t.table, err)
	}
	if tag.RowsAffected() == 0 {
		return t.notFound
	}
	return nil
}

func (t *namedTable) find(ctx context.Context, id int64, dst ...any) error {
	err := database.Conn(ctx, t.pool).QueryRow(ctx,
		fmt.Sprintf(`SELECT id, name, description FROM %s WHERE id = $1`, t.table), id,
	).Scan(dst...)
	if err != nil {
		if database.IsNoRows(err) {
			return t.notFound
		}
		return fmt.Errorf("query %s: %w", t.table, err)
	}
	return nil
}

func (t *namedTable) list(ctx context.Context, scan func(id int64, name, description string)) error {
	rows, err := database.Conn(ctx, t.pool).Query(ctx,
		fmt.Sprintf(`SELECT id, name, description FROM %s ORDER BY id`, t.table),
	)
	if err != nil {
		return fmt.Errorf("list %s: %w", t.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                int64
			name, description string
		)
		if err := rows.Scan(&id, &name, &description); err != nil {
			return fmt.Errorf("scan %s: %w", t.table, err)
		}
		scan(id, name, description)
	}
	return rows.Err()
}

func (t *namedTable) existsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := database.Conn(ctx, t.pool).QueryRow(ctx,
		fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE LOWER(name) = LOWER($1) AND id <> $2)`, t.table),
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check %s name: %w", t.table, err)
	}
	return exists, nil
}

// ========================================
// PRODUCT TYPES
// ========================================

type productTypeRepository struct {
	t *namedTable
}

func NewProductTypeRepository(pool *pgxpool.Pool) ProductTypeRepository {
	return &productTypeRepository{t: &namedTable{
		pool:      pool,
		table:     "product_types",
		notFound:  model.ErrProductTypeNotFound,
		nameTaken: func(err error) error { return model.ErrProductTypeExists.Wrap(err) },
		inUse:     func(err error) error { return model.ErrProductTypeInUse.Wrap(err) },
	}}
}

func (r *productTypeRepository) Create(ctx context.Context, pt *model.ProductType) error {
	id, err := r.t.create(ctx, pt.Name, pt.Description)
	if err != nil {
		return err
	}
	pt.ID = id
	return nil
}

func (r *productTypeRepository) Update(ctx context.Context, pt *model.ProductType) error {
	return r.t.update(ctx, pt.ID, pt.Name, pt.Description)
}

func (r *productTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

func (r *productTypeRepository) FindByID(ctx context.Context, id int64) (*model.ProductType, error) {
	var pt model.ProductType
	if err := r.t.find(ctx, id, &pt.ID, &pt.Name, &pt.Description); err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *productTypeRepository) List(ctx context.Context) ([]model.ProductType, error) {
	out := []model.ProductType{}
	err := r.t.list(ctx, func(id int64, name, description string) {
		out = append(out, model.ProductType{ID: id, Name: name, Description: description})
	})
	return out, err
}

func (r *productTypeRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.t.existsByName(ctx, name, excludeID)
}

// ========================================
// CATEGORIES
// ========================================

type categoryRepository struct {
	t *namedTable
}

func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{t: &namedTable{
		pool:      pool,
		table:     "categories",
		notFound:  model.ErrCategoryNotFound,
		nameTaken: func(err error) error { return model.ErrCategoryExists.Wrap(err) },
		inUse:     func(err error) error { return model.ErrCategoryInUse.Wrap(err) },
	}}
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	id, err := r.t.create(ctx, c.Name, c.Description)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c *model.Category) error {
	return r.t.update(ctx, c.ID, c.Name, c.Description)
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	if err := r.t.find(ctx, id, &c.ID, &c.Name, &c.Description); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	out := []model.Category{}
	err := r.t.list(ctx, func(id int64, name, description string) {
		out = append(out, model.Category{ID: id, Name: name, Description: description})
	})
	return out, err
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.t.existsByName(ctx, name, excludeID)
}
