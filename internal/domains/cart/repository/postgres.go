package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodee-backend/internal/domains/cart/model"
	"foodee-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetOrCreate(ctx context.Context, userID int64) (*model.Cart, error) {
	// DO UPDATE để RETURNING luôn có dòng
	query := `
		INSERT INTO carts (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, created_at
	`
	var c model.Cart
	if err := database.Conn(ctx, r.pool).QueryRow(ctx, query, userID).Scan(&c.ID, &c.UserID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("get or create cart: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) LockByUserID(ctx context.Context, userID int64) error {
	var id int64
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id FROM carts WHERE user_id = $1 FOR UPDATE`, userID,
	).Scan(&id)
	if err != nil && !database.IsNoRows(err) {
		return fmt.Errorf("lock cart: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByUserID(ctx context.Context, userID int64) (*model.Cart, error) {
	var c model.Cart
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id, user_id, created_at FROM carts WHERE user_id = $1`, userID,
	).Scan(&c.ID, &c.UserID, &c.CreatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return &model.Cart{UserID: userID, Items: []model.CartItem{}}, nil
		}
		return nil, fmt.Errorf("query cart: %w", err)
	}

	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.subtotal,
		       p.name, p.image_url, p.status,
		       CASE WHEN p.discounted_price > 0 THEN p.discounted_price ELSE p.original_price END
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id
	`, c.ID)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	c.Items = []model.CartItem{}
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(
			&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.Subtotal,
			&it.ProductName, &it.ProductImage, &it.ProductStatus, &it.UnitPrice,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		c.Items = append(c.Items, it)
	}
	return &c, rows.Err()
}

func (r *postgresRepository) FindItem(ctx context.Context, cartID, productID int64) (*model.CartItem, error) {
	var it model.CartItem
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, cart_id, product_id, quantity, subtotal
		FROM cart_items WHERE cart_id = $1 AND product_id = $2
	`, cartID, productID).Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.Subtotal)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query cart item: %w", err)
	}
	return &it, nil
}

func (r *postgresRepository) UpsertItem(ctx context.Context, item *model.CartItem) error {
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity, subtotal)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, subtotal = EXCLUDED.subtotal
		RETURNING id
	`
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query,
		item.CartID, item.ProductID, item.Quantity, item.Subtotal,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteItem(ctx context.Context, cartID, productID int64) (bool, error) {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`, cartID, productID,
	)
	if err != nil {
		return false, fmt.Errorf("delete cart item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) ClearItems(ctx context.Context, cartID int64) (int64, error) {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		return 0, fmt.Errorf("clear cart: %w", err)
	}
	return tag.RowsAffected(), nil
}
