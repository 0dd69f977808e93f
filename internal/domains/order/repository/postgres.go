package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodee-backend/internal/domains/order/model"
	"foodee-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) OrderRepository {
	return &postgresRepository{pool: pool}
}

const selectOrder = `
	SELECT o.id, o.user_id, o.full_name, o.email, o.phone_number, o.delivery_address,
	       o.order_date, o.delivery_date, o.order_status, o.payment_status, o.total_amount,
	       COALESCE(p.payment_method, '')
	FROM orders o
	LEFT JOIN payments p ON p.order_id = o.id
`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.FullName, &o.Email, &o.PhoneNumber, &o.DeliveryAddress,
		&o.OrderDate, &o.DeliveryDate, &o.Status, &o.PaymentStatus, &o.TotalAmount,
		&o.PaymentMethod,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ========================================
// CREATE
// ========================================

func (r *postgresRepository) Create(ctx context.Context, order *model.Order) error {
	conn := database.Conn(ctx, r.pool)

	err := conn.QueryRow(ctx, `
		INSERT INTO orders (user_id, full_name, email, phone_number, delivery_address,
		                    order_date, delivery_date, order_status, payment_status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		order.UserID, order.FullName, order.Email, order.PhoneNumber, order.DeliveryAddress,
		order.OrderDate, order.DeliveryDate, order.Status, order.PaymentStatus, order.TotalAmount,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Items {
		it := &order.Items[i]
		it.OrderID = order.ID
		err := conn.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, product_image,
			                         quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, it.OrderID, it.ProductID, it.ProductName, it.ProductImage, it.Quantity, it.UnitPrice, it.Subtotal,
		).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) CreatePayment(ctx context.Context, payment *model.Payment) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO payments (order_id, payment_method) VALUES ($1, $2) RETURNING id`,
		payment.OrderID, payment.Method,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ========================================
// READ
// ========================================

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	o, err := scanOrder(database.Conn(ctx, r.pool).QueryRow(ctx, selectOrder+" WHERE o.id = $1", id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}

	orders := []model.Order{*o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return r.list(ctx, " WHERE o.user_id = $1 ORDER BY o.order_date DESC, o.id DESC", userID)
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	return r.list(ctx, " ORDER BY o.order_date DESC, o.id DESC")
}

func (r *postgresRepository) list(ctx context.Context, tail string, args ...any) ([]model.Order, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, selectOrder+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems nạp items cho nhiều order bằng một query
func (r *postgresRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
		orders[i].Items = []model.OrderItem{}
	}

	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT id, order_id, product_id, product_name, product_image, quantity, unit_price, subtotal
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.ProductImage,
			&it.Quantity, &it.UnitPrice, &it.Subtotal,
		); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		i := index[it.OrderID]
		orders[i].Items = append(orders[i].Items, it)
	}
	return rows.Err()
}

// ========================================
// UPDATE / DELETE
// ========================================

func (r *postgresRepository) exec(ctx context.Context, query string, args ...any) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	return r.exec(ctx, `UPDATE orders SET order_status = $2 WHERE id = $1`, id, status)
}

func (r *postgresRepository) UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error {
	return r.exec(ctx, `UPDATE orders SET payment_status = $2 WHERE id = $1`, id, status)
}

func (r *postgresRepository) UpdateStatuses(ctx context.Context, id int64, status model.OrderStatus, paymentStatus model.PaymentStatus) error {
	return r.exec(ctx, `UPDATE orders SET order_status = $2, payment_status = $3 WHERE id = $1`, id, status, paymentStatus)
}

func (r *postgresRepository) UpdateDeliveryDate(ctx context.Context, id int64, deliveryDate time.Time) error {
	return r.exec(ctx, `UPDATE orders SET delivery_date = $2 WHERE id = $1`, id, deliveryDate)
}

func (r *postgresRepository) DeletePayment(ctx context.Context, orderID int64) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM payments WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
}
