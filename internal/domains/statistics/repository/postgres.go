package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodee-backend/internal/domains/statistics/model"
	"foodee-backend/pkg/database"
)

// Repository - truy vấn tổng hợp chỉ đọc cho dashboard
type Repository interface {
	Overview(ctx context.Context) (*model.DashboardOverview, error)
	Summary(ctx context.Context) (*model.QuickSummary, error)
	// RevenueByMonth chỉ trả các tháng có doanh thu, tháng tính theo utcOffset (giây)
	RevenueByMonth(ctx context.Context, from, to time.Time, utcOffset int) ([]model.MonthlyRevenue, error)
	TopFoods(ctx context.Context, limit int) ([]model.TopFood, error)
	TopUsers(ctx context.Context, limit int) ([]model.TopUser, error)
	RecentOrders(ctx context.Context, limit int) ([]model.RecentOrder, error)
	RecentBookings(ctx context.Context, limit int) ([]model.RecentBooking, error)
	CountOrdersByStatus(ctx context.Context) (map[string]int64, error)
}

// Doanh thu không tính đơn đã hủy
const revenueFilter = `order_status <> 'CANCELLED'`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Overview(ctx context.Context) (*model.DashboardOverview, error) {
	var o model.DashboardOverview
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products WHERE status = 'AVAILABLE'),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM bookings),
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE `+revenueFilter+`)
	`).Scan(&o.TotalProducts, &o.TotalUsers, &o.TotalOrders, &o.TotalBookings, &o.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("dashboard overview: %w", err)
	}
	return &o, nil
}

func (r *postgresRepository) Summary(ctx context.Context) (*model.QuickSummary, error) {
	var s model.QuickSummary
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		SELECT
			(SELECT COUNT(DISTINCT product_id) FROM order_items WHERE product_id IS NOT NULL),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE `+revenueFilter+`),
			(SELECT COUNT(*) FROM product_types)
	`).Scan(&s.TotalDishes, &s.TotalUsers, &s.TotalBookings, &s.TotalOrders, &s.TotalRevenue, &s.TotalProductTypes)
	if err != nil {
		return nil, fmt.Errorf("quick summary: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) RevenueByMonth(ctx context.Context, from, to time.Time, utcOffset int) ([]model.MonthlyRevenue, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT
			EXTRACT(MONTH FROM (order_date AT TIME ZONE 'UTC') + make_interval(secs => $3))::int AS month,
			SUM(total_amount)
		FROM orders
		WHERE order_date >= $1 AND order_date < $2 AND `+revenueFilter+`
		GROUP BY month
		HAVING SUM(total_amount) > 0
		ORDER BY month
	`, from, to, utcOffset)
	if err != nil {
		return nil, fmt.Errorf("revenue by month: %w", err)
	}
	defer rows.Close()

	list := []model.MonthlyRevenue{}
	for rows.Next() {
		var m model.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Revenue); err != nil {
			return nil, fmt.Errorf("scan monthly revenue: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *postgresRepository) TopFoods(ctx context.Context, limit int) ([]model.TopFood, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT p.id, p.name, p.image_url, COALESCE(pt.name, ''),
		       CASE WHEN p.discounted_price > 0 THEN p.discounted_price ELSE p.original_price END,
		       SUM(oi.quantity) AS total_ordered
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		LEFT JOIN product_types pt ON pt.id = p.product_type_id
		WHERE o.`+revenueFilter+`
		GROUP BY p.id, pt.name
		ORDER BY total_ordered DESC, p.id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top foods: %w", err)
	}
	defer rows.Close()

	list := []model.TopFood{}
	for rows.Next() {
		var f model.TopFood
		if err := rows.Scan(&f.ProductID, &f.ProductName, &f.ProductImage, &f.ProductType, &f.UnitPrice, &f.TotalOrdered); err != nil {
			return nil, fmt.Errorf("scan top food: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (r *postgresRepository) TopUsers(ctx context.Context, limit int) ([]model.TopUser, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		WITH spending AS (
			SELECT user_id, SUM(total_amount) AS total, COUNT(*) AS cnt
			FROM orders WHERE `+revenueFilter+`
			GROUP BY user_id
		), items AS (
			SELECT o.user_id,
			       string_agg(oi.product_name || ' (x' || oi.quantity || ')', ', ' ORDER BY o.order_date DESC, oi.id) AS summary
			FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE o.`+revenueFilter+`
			GROUP BY o.user_id
		), booked AS (
			SELECT user_id, COUNT(*) AS cnt,
			       string_agg('Đặt bàn cho ' || number_of_guests || ' người vào ' || to_char(booking_date, 'YYYY-MM-DD'),
			                  ', ' ORDER BY booking_date DESC) AS summary
			FROM bookings
			GROUP BY user_id
		)
		SELECT u.username, u.full_name,
		       COALESCE(s.total, 0), COALESCE(s.cnt, 0), COALESCE(b.cnt, 0),
		       COALESCE(i.summary, ''), COALESCE(b.summary, '')
		FROM users u
		LEFT JOIN spending s ON s.user_id = u.id
		LEFT JOIN items i ON i.user_id = u.id
		LEFT JOIN booked b ON b.user_id = u.id
		ORDER BY COALESCE(s.total, 0) DESC, u.username
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top users: %w", err)
	}
	defer rows.Close()

	list := []model.TopUser{}
	for rows.Next() {
		var u model.TopUser
		if err := rows.Scan(&u.Username, &u.FullName, &u.TotalSpending, &u.OrderCount, &u.BookingCount, &u.Orders, &u.Bookings); err != nil {
			return nil, fmt.Errorf("scan top user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *postgresRepository) RecentOrders(ctx context.Context, limit int) ([]model.RecentOrder, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT o.id, u.username, o.order_date,
		       COALESCE((
		           SELECT string_agg(oi.product_name || ' (x' || oi.quantity || ')' ||
		                             COALESCE(' [' || pt.name || ']', ''), ', ' ORDER BY oi.id)
		           FROM order_items oi
		           LEFT JOIN products p ON p.id = oi.product_id
		           LEFT JOIN product_types pt ON pt.id = p.product_type_id
		           WHERE oi.order_id = o.id
		       ), '')
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.order_date DESC, o.id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()

	list := []model.RecentOrder{}
	for rows.Next() {
		var o model.RecentOrder
		if err := rows.Scan(&o.OrderID, &o.Username, &o.OrderDate, &o.Items); err != nil {
			return nil, fmt.Errorf("scan recent order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func (r *postgresRepository) RecentBookings(ctx context.Context, limit int) ([]model.RecentBooking, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT b.id, u.username, b.number_of_guests, b.booking_date, b.booking_time, b.created_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}
	defer rows.Close()

	list := []model.RecentBooking{}
	for rows.Next() {
		var b model.RecentBooking
		if err := rows.Scan(&b.BookingID, &b.Username, &b.NumberOfGuests, &b.BookingDate, &b.BookingTime, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent booking: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *postgresRepository) CountOrdersByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT order_status, COUNT(*) FROM orders GROUP BY order_status
	`)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan order status: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
