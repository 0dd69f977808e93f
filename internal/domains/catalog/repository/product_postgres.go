package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodee-backend/internal/domains/catalog/model"
	"foodee-backend/pkg/database"
)

type productRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const selectProduct = `
	SELECT p.id, p.name, p.description, p.image_url, p.original_price, p.discounted_price,
	       p.status, p.product_type_id, pt.name, p.category_id, COALESCE(c.name, ''),
	       p.created_at, p.updated_at
	FROM products p
	JOIN product_types pt ON pt.id = p.product_type_id
	LEFT JOIN categories c ON c.id = p.category_id
`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.OriginalPrice, &p.DiscountedPrice,
		&p.Status, &p.ProductTypeID, &p.ProductTypeName, &p.CategoryID, &p.CategoryName,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) queryProducts(ctx context.Context, where string, args ...any) ([]model.Product, error) {
	query := selectProduct
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY p.id"

	rows, err := database.Conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// mapWriteError: trùng tên hoặc tham chiếu loại / danh mục không tồn tại
func mapProductWriteError(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return model.ErrProductNameExists.Wrap(err)
	case database.IsForeignKeyViolation(err):
		if database.ConstraintName(err) == "products_category_id_fkey" {
			return model.ErrCategoryNotFound.Wrap(err)
		}
		return model.ErrProductTypeNotFound.Wrap(err)
	}
	return err
}

func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (name, description, image_url, original_price, discounted_price,
		                      status, product_type_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query,
		p.Name, p.Description, p.ImageURL, p.OriginalPrice, p.DiscountedPrice,
		p.Status, p.ProductTypeID, p.CategoryID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", mapProductWriteError(err))
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, image_url = $4, original_price = $5,
		    discounted_price = $6, status = $7, product_type_id = $8, category_id = $9,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query,
		p.ID, p.Name, p.Description, p.ImageURL, p.OriginalPrice,
		p.DiscountedPrice, p.Status, p.ProductTypeID, p.CategoryID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return model.ErrProductNotFound
		}
		return fmt.Errorf("update product: %w", mapProductWriteError(err))
	}
	return nil
}

func (r *productRepository) UpdateImage(ctx context.Context, id int64, imageURL string) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx,
		`UPDATE products SET image_url = $2, updated_at = NOW() WHERE id = $1`, id, imageURL,
	)
	if err != nil {
		return fmt.Errorf("update product image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	p, err := scanProduct(database.Conn(ctx, r.pool).QueryRow(ctx, selectProduct+" WHERE p.id = $1", id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	return r.queryProducts(ctx, "")
}

func (r *productRepository) ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error) {
	return r.queryProducts(ctx, "p.status = $1", status)
}

func (r *productRepository) ListByProductType(ctx context.Context, productTypeID int64) ([]model.Product, error) {
	return r.queryProducts(ctx, "p.product_type_id = $1", productTypeID)
}

func (r *productRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	return r.queryProducts(ctx, "p.category_id = $1", categoryID)
}

func (r *productRepository) SearchByName(ctx context.Context, name string) ([]model.Product, error) {
	return r.queryProducts(ctx, "p.name ILIKE '%' || $1 || '%'", name)
}

func (r *productRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE name = $1 AND id <> $2)`, name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product name: %w", err)
	}
	return exists, nil
}

func (r *productRepository) CountByProductType(ctx context.Context) ([]model.ProductTypeStat, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT pt.name, COUNT(p.id)
		FROM product_types pt
		LEFT JOIN products p ON p.product_type_id = pt.id
		GROUP BY pt.id, pt.name
		ORDER BY pt.name
	`)
	if err != nil {
		return nil, fmt.Errorf("count products by type: %w", err)
	}
	defer rows.Close()

	stats := []model.ProductTypeStat{}
	for rows.Next() {
		var s model.ProductTypeStat
		if err := rows.Scan(&s.Name, &s.TotalProducts); err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
