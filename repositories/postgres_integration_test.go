//go:build integration
// +build integration

package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"frydays/cart"
	"frydays/config"
	"frydays/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("frydays"),
		postgres.WithUsername("frydays"),
		postgres.WithPassword("frydays"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, config.RunMigrations(dsn, "../database/migration"))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)

	store := NewPostgresStore(pool)
	t.Cleanup(store.Close)
	return store
}

func TestPostgresStore(t *testing.T) {
	store := setupPostgresStore(t)
	ctx := context.Background()

	user := &models.User{Email: "cliente@frydays.com", Username: "Cliente", Password: "hash"}
	require.NoError(t, store.Users().Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.IsAdmin)

	err := store.Users().Create(ctx, &models.User{Email: "cliente@frydays.com", Username: "Dup", Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = store.Users().FindByEmail(ctx, "missing@frydays.com")
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("menu items", func(t *testing.T) {
		item := &models.MenuItem{
			Name:     "Teste",
			Price:    models.MustParseMoney("19.90"),
			Category: "lanches",
			Image:    "https://example.com/x.png",
		}
		require.NoError(t, store.MenuItems().Create(ctx, item))
		assert.False(t, item.IsFeatured)

		got, err := store.MenuItems().FindByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "19.90", got.Price.String())

		featured := true
		updated, err := store.MenuItems().Update(ctx, item.ID, models.MenuItemPatch{IsFeatured: &featured})
		require.NoError(t, err)
		assert.True(t, updated.IsFeatured)

		_, err = store.MenuItems().Update(ctx, 999999, models.MenuItemPatch{IsFeatured: &featured})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, store.MenuItems().Delete(ctx, 999999), ErrNotFound)
	})

	t.Run("cart upsert is atomic", func(t *testing.T) {
		item := &models.MenuItem{Name: "Fritas", Price: models.MustParseMoney("12.00"), Category: "acompanhamentos", Image: "x"}
		require.NoError(t, store.MenuItems().Create(ctx, item))

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Carts().AddOrIncrement(ctx, user.ID, item.ID, 1)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		entries, err := store.Carts().ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 20, entries[0].Item.Quantity)

		_, err = store.Carts().AddOrIncrement(ctx, user.ID, 999999, 1)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.Carts().AddOrIncrement(ctx, user.ID, item.ID, cart.MaxQuantity)
		assert.ErrorIs(t, err, cart.ErrQuantityLimit)
		entries, err = store.Carts().ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, entries[0].Item.Quantity)

		require.NoError(t, store.Carts().SetQuantity(ctx, user.ID, entries[0].Item.ID, 0))
		entries, err = store.Carts().ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("promotions", func(t *testing.T) {
		p := &models.Promotion{Title: "Promo", Description: "d", Price: models.MustParseMoney("9.99"), Image: "x", PromoType: models.PromoSlotHighlight1}
		require.NoError(t, store.Promotions().Create(ctx, p))

		promos, err := store.Promotions().FindAll(ctx, PromotionFilter{Slot: models.PromoSlotHighlight1})
		require.NoError(t, err)
		require.Len(t, promos, 1)
		assert.Equal(t, "Promo", promos[0].Title)
	})
}
