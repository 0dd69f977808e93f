//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodee-backend/internal/infrastructure/database/dbtest"
)

func insertOrder(t *testing.T, pool *pgxpool.Pool, userID, productID int64, status string, total int64, at time.Time) {
	t.Helper()
	ctx := context.Background()
	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO orders (user_id, delivery_address, order_date, order_status, payment_status, total_amount)
		VALUES ($1, 'x', $2, $3, 'PENDING', $4)
		RETURNING id
	`, userID, at, status, decimal.NewFromInt(total)).Scan(&id)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, subtotal)
		VALUES ($1, $2, 'Phở bò', 1, $3, $3)
	`, id, productID, decimal.NewFromInt(total))
	require.NoError(t, err)
}

func TestRevenueExcludesCancelledOrders(t *testing.T) {
	pool := dbtest.Open(t)
	ctx := context.Background()
	userID := dbtest.SeedUser(t, pool, "alice")
	productID := dbtest.SeedProduct(t, pool, "Phở bò", 50)

	may := time.Date(2024, 5, 10, 3, 0, 0, 0, time.UTC)
	insertOrder(t, pool, userID, productID, "DELIVERED", 100, may)
	insertOrder(t, pool, userID, productID, "PENDING", 50, may)
	insertOrder(t, pool, userID, productID, "CANCELLED", 1000, may)
	insertOrder(t, pool, userID, productID, "CANCELLED", 70, may.AddDate(0, 1, 0))

	repo := NewPostgresRepository(pool)

	overview, err := repo.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), overview.TotalOrders, "cancelled orders still counted")
	assert.True(t, overview.TotalRevenue.Equal(decimal.NewFromInt(150)), overview.TotalRevenue.String())

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(150)), summary.TotalRevenue.String())

	months, err := repo.RevenueByMonth(ctx,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 7*3600)
	require.NoError(t, err)
	require.Len(t, months, 1, "June has only a cancelled order")
	assert.Equal(t, 5, months[0].Month)
	assert.True(t, months[0].Revenue.Equal(decimal.NewFromInt(150)))

	top, err := repo.TopUsers(ctx, 5)
	require.NoError(t, err)
	require.NotEmpty(t, top)
	assert.True(t, top[0].TotalSpending.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, int64(2), top[0].OrderCount)
}
