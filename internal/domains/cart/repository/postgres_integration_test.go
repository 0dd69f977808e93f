//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodee-backend/internal/infrastructure/database/dbtest"
	"foodee-backend/pkg/database"
)

func TestLockByUserIDBlocksSecondTransaction(t *testing.T) {
	pool := dbtest.Open(t)
	userID := dbtest.SeedUser(t, pool, "alice")
	dbtest.SeedCart(t, pool, userID)

	repo := NewPostgresRepository(pool)
	tx := database.NewTxManager(pool)
	ctx := context.Background()

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- tx.WithinTx(ctx, func(ctx context.Context) error {
			if err := repo.LockByUserID(ctx, userID); err != nil {
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	waitCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	err := tx.WithinTx(waitCtx, func(ctx context.Context) error {
		return repo.LockByUserID(ctx, userID)
	})
	assert.Error(t, err, "second lock must wait for the first transaction")

	close(release)
	require.NoError(t, <-done)

	err = tx.WithinTx(ctx, func(ctx context.Context) error {
		return repo.LockByUserID(ctx, userID)
	})
	assert.NoError(t, err)
}

func TestLockByUserIDWithoutCart(t *testing.T) {
	pool := dbtest.Open(t)
	userID := dbtest.SeedUser(t, pool, "bob")
	repo := NewPostgresRepository(pool)

	err := database.NewTxManager(pool).WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.LockByUserID(ctx, userID)
	})
	assert.NoError(t, err)
}
