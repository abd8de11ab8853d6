package services

import (
	"context"
	"testing"

	"frydays/models"
	"frydays/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) *models.Money {
	m := models.MustParseMoney(s)
	return &m
}

func TestMenuService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.menu.Create(ctx, models.CreateMenuItemRequest{
		Name:     "Milkshake",
		Price:    money("14.5"),
		Category: "Bebidas",
		Image:    "https://example.com/shake.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, item.ID)
	assert.Equal(t, "bebidas", item.Category)
	assert.Equal(t, "14.50", item.Price.String())
	assert.False(t, item.IsFeatured)

	drinks, err := f.menu.List(ctx, repositories.MenuFilter{Category: "bebidas"})
	require.NoError(t, err)
	assert.Len(t, drinks, 2)
}

func TestMenuService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.CreateMenuItemRequest
	}{
		{"negative price", models.CreateMenuItemRequest{Name: "X", Price: money("-1"), Category: "lanches", Image: "i"}},
		{"missing price", models.CreateMenuItemRequest{Name: "X", Category: "lanches", Image: "i"}},
		{"bad category", models.CreateMenuItemRequest{Name: "X", Price: money("1"), Category: "a b", Image: "i"}},
		{"blank name", models.CreateMenuItemRequest{Name: "  ", Price: money("1"), Category: "lanches", Image: "i"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.menu.Create(ctx, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestMenuService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.menu.Update(ctx, 1, models.MenuItemPatch{})
	assert.ErrorIs(t, err, ErrValidation)

	featured := false
	item, err := f.menu.Update(ctx, 1, models.MenuItemPatch{IsFeatured: &featured})
	require.NoError(t, err)
	assert.False(t, item.IsFeatured)

	featuredItems, err := f.menu.List(ctx, repositories.MenuFilter{FeaturedOnly: true})
	require.NoError(t, err)
	assert.Len(t, featuredItems, 3)

	_, err = f.menu.Update(ctx, 404, models.MenuItemPatch{IsFeatured: &featured})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMenuService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.menu.Delete(ctx, 6))
	_, err := f.menu.Get(ctx, 6)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, f.menu.Delete(ctx, 6), repositories.ErrNotFound)
}

func TestPromotionService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	promos := NewPromotionService(f.store.Promotions())

	p, err := promos.Create(ctx, models.CreatePromotionRequest{
		Title: "Terça do Burger", Description: "d", Price: money("19.90"), Image: "i",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PromoSlotPromoPage, p.PromoType)

	_, err = promos.Create(ctx, models.CreatePromotionRequest{Title: "t", Description: "d", Price: money("-2"), Image: "i"})
	assert.ErrorIs(t, err, ErrValidation)

	list, err := promos.List(ctx, repositories.PromotionFilter{Slot: models.PromoSlotPromoPage})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDashboardService_Counts(t *testing.T) {
	f := newFixture(t)

	data, err := NewDashboardService(f.store).Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardData{MenuItemsCount: 6, PromotionsCount: 4, UsersCount: 2}, data)
}
