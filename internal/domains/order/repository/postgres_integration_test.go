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

	"foodee-backend/internal/domains/order/model"
	"foodee-backend/internal/infrastructure/database/dbtest"
	"foodee-backend/pkg/database"
)

func placeOrder(t *testing.T, repo OrderRepository, userID, productID int64, at time.Time) *model.Order {
	t.Helper()
	o := &model.Order{
		UserID:          userID,
		FullName:        "Nguyễn Văn A",
		Email:           "a@foodee.vn",
		DeliveryAddress: "1 Lê Lợi, Q1",
		OrderDate:       at,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		Items: []model.OrderItem{
			model.NewOrderItem(productID, "Phở bò", "pho.jpg", decimal.NewFromInt(50), 2),
			model.NewOrderItem(productID, "Phở bò", "pho.jpg", decimal.NewFromInt(50), 1),
		},
	}
	o.TotalAmount = o.CalculateTotal()

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, o))
	require.NoError(t, repo.CreatePayment(ctx, &model.Payment{OrderID: o.ID, Method: model.PaymentMethodCOD}))
	return o
}

func setup(t *testing.T) (*pgxpool.Pool, OrderRepository, int64, int64) {
	pool := dbtest.Open(t)
	userID := dbtest.SeedUser(t, pool, "alice")
	productID := dbtest.SeedProduct(t, pool, "Phở bò", 50)
	return pool, NewPostgresRepository(pool), userID, productID
}

func TestOrderRoundTrip(t *testing.T) {
	_, repo, userID, productID := setup(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	created := placeOrder(t, repo, userID, productID, at)
	require.NotZero(t, created.ID)
	for _, it := range created.Items {
		assert.NotZero(t, it.ID)
		assert.Equal(t, created.ID, it.OrderID)
	}

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)
	assert.True(t, got.OrderDate.Equal(at))
	assert.Nil(t, got.DeliveryDate)
	assert.Equal(t, model.OrderStatusPending, got.Status)
	assert.Equal(t, model.PaymentMethodCOD, got.PaymentMethod)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(150)), got.TotalAmount.String())
	require.Len(t, got.Items, 2)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, got.Items[0].Subtotal.Equal(decimal.NewFromInt(100)))

	_, err = repo.FindByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestOrderListsNewestFirst(t *testing.T) {
	pool, repo, alice, productID := setup(t)
	bob := dbtest.SeedUser(t, pool, "bob")
	ctx := context.Background()
	day := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	older := placeOrder(t, repo, alice, productID, day)
	newer := placeOrder(t, repo, alice, productID, day.Add(24*time.Hour))
	placeOrder(t, repo, bob, productID, day.Add(48*time.Hour))

	mine, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].ID)
	assert.Equal(t, older.ID, mine[1].ID)
	assert.Len(t, mine[1].Items, 2)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, bob, all[0].UserID)
}

func TestOrderUpdates(t *testing.T) {
	_, repo, userID, productID := setup(t)
	ctx := context.Background()
	o := placeOrder(t, repo, userID, productID, time.Now().UTC().Truncate(time.Second))

	require.NoError(t, repo.UpdateStatuses(ctx, o.ID, model.OrderStatusConfirmed, model.PaymentStatusPaid))
	delivery := time.Date(2030, 1, 2, 11, 30, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateDeliveryDate(ctx, o.ID, delivery))

	got, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, got.Status)
	assert.Equal(t, model.PaymentStatusPaid, got.PaymentStatus)
	require.NotNil(t, got.DeliveryDate)
	assert.True(t, got.DeliveryDate.Equal(delivery))

	assert.ErrorIs(t, repo.UpdateStatus(ctx, o.ID+100, model.OrderStatusShipping), model.ErrOrderNotFound)
}

func TestOrderDeleteCascadesItems(t *testing.T) {
	pool, repo, userID, productID := setup(t)
	ctx := context.Background()
	o := placeOrder(t, repo, userID, productID, time.Now().UTC().Truncate(time.Second))

	tx := database.NewTxManager(pool)
	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := repo.DeletePayment(ctx, o.ID); err != nil {
			return err
		}
		return repo.Delete(ctx, o.ID)
	})
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, o.ID)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)

	var items, payments int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_items WHERE order_id = $1`, o.ID).Scan(&items))
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE order_id = $1`, o.ID).Scan(&payments))
	assert.Zero(t, items)
	assert.Zero(t, payments)
}

func TestOrderItemSurvivesProductDeletion(t *testing.T) {
	pool, repo, userID, productID := setup(t)
	ctx := context.Background()
	o := placeOrder(t, repo, userID, productID, time.Now().UTC().Truncate(time.Second))

	_, err := pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Nil(t, got.Items[0].ProductID)
	assert.Equal(t, "Phở bò", got.Items[0].ProductName)
}
