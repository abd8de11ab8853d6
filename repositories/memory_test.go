package repositories

import (
	"context"
	"sync"
	"math"
	"testing"

	"frydays/cart"
	"frydays/models"
	"frydays/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *MemoryStore {
	t.Helper()
	s, err := NewSeededMemoryStore()
	require.NoError(t, err)
	return s
}

func TestSeededMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	admin, err := s.Users().FindByEmail(ctx, "admin@frydays.com")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	ok, err := utils.VerifyPassword(admin.Password, DemoPassword)
	require.NoError(t, err)
	assert.True(t, ok)

	items, err := s.MenuItems().FindAll(ctx, MenuFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 6)
	assert.Equal(t, "Clássico Fryday's", items[0].Name)
	assert.Equal(t, "25.90", items[0].Price.String())

	featured, err := s.MenuItems().FindAll(ctx, MenuFilter{FeaturedOnly: true})
	require.NoError(t, err)
	assert.Len(t, featured, 4)

	promos, err := s.Promotions().FindAll(ctx, PromotionFilter{})
	require.NoError(t, err)
	assert.Len(t, promos, 4)
}

func TestMemoryUsers_FindByEmailNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Users().FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUsers_CreateForcesNonAdminAndRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u := &models.User{Email: "a@b.com", Username: "ab", Password: "x", IsAdmin: true}
	require.NoError(t, s.Users().Create(ctx, u))
	assert.Equal(t, 1, u.ID)
	assert.False(t, u.IsAdmin)
	assert.False(t, u.CreatedAt.IsZero())

	err := s.Users().Create(ctx, &models.User{Email: "a@b.com", Username: "other", Password: "y"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	n, err := s.Users().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryMenuItems_CreateIsNeverFeatured(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	item := &models.MenuItem{Name: "X", Price: models.MustParseMoney("1.00"), Category: "lanches", IsFeatured: true}
	require.NoError(t, s.MenuItems().Create(ctx, item))
	assert.False(t, item.IsFeatured)
	assert.Equal(t, "", item.DiscountBadge)
}

func TestMemoryMenuItems_FilterByCategory(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	items, err := s.MenuItems().FindAll(ctx, MenuFilter{Category: " Hamburgueres "})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = s.MenuItems().FindAll(ctx, MenuFilter{Category: "drop table;"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestMemoryPromotions_FilterBySlot(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	promos, err := s.Promotions().FindAll(ctx, PromotionFilter{Slot: models.PromoSlotHighlight2})
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "Fritas de Brinde", promos[0].Title)

	_, err = s.Promotions().FindAll(ctx, PromotionFilter{Slot: "sidebar"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestMemoryMenuItems_UpdateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	badge := "Novo"
	featured := true
	updated, err := s.MenuItems().Update(ctx, 2, models.MenuItemPatch{DiscountBadge: &badge, IsFeatured: &featured})
	require.NoError(t, err)
	assert.Equal(t, "Novo", updated.DiscountBadge)
	assert.True(t, updated.IsFeatured)
	assert.Equal(t, "Duplo Bacon Paradise", updated.Name)

	_, err = s.MenuItems().Update(ctx, 99, models.MenuItemPatch{DiscountBadge: &badge})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.MenuItems().Delete(ctx, 99), ErrNotFound)
	assert.ErrorIs(t, s.Promotions().Delete(ctx, 99), ErrNotFound)
}

func TestMemoryCarts_AddTwiceIsOneLine(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	_, err := s.Carts().AddOrIncrement(ctx, 2, 1, 1)
	require.NoError(t, err)
	line, err := s.Carts().AddOrIncrement(ctx, 2, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	entries, err := s.Carts().ListByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Item.Quantity)
	assert.Equal(t, "Clássico Fryday's", entries[0].MenuItem.Name)
}

func TestMemoryCarts_UnknownMenuItem(t *testing.T) {
	s := seeded(t)

	_, err := s.Carts().AddOrIncrement(context.Background(), 2, 404, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCarts_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	line, err := s.Carts().AddOrIncrement(ctx, 2, 3, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Carts().SetQuantity(ctx, 1, line.ID, 5), ErrNotFound)
	assert.ErrorIs(t, s.Carts().Remove(ctx, 1, line.ID), ErrNotFound)

	require.NoError(t, s.Carts().SetQuantity(ctx, 2, line.ID, 0))
	_, err = s.Carts().FindLine(ctx, 2, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCarts_DeletingMenuItemDropsLines(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	_, err := s.Carts().AddOrIncrement(ctx, 2, 5, 2)
	require.NoError(t, err)
	require.NoError(t, s.MenuItems().Delete(ctx, 5))

	entries, err := s.Carts().ListByUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryCarts_ConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Carts().AddOrIncrement(ctx, 2, 4, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	line, err := s.Carts().FindLine(ctx, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 50, line.Quantity)
}

func TestMemoryCarts_QuantityLimit(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	_, err := s.Carts().AddOrIncrement(ctx, 2, 1, math.MaxInt)
	assert.ErrorIs(t, err, cart.ErrQuantityLimit)

	line, err := s.Carts().AddOrIncrement(ctx, 2, 1, cart.MaxQuantity)
	require.NoError(t, err)

	_, err = s.Carts().AddOrIncrement(ctx, 2, 1, 1)
	assert.ErrorIs(t, err, cart.ErrQuantityLimit)
	assert.ErrorIs(t, s.Carts().SetQuantity(ctx, 2, line.ID, cart.MaxQuantity+1), cart.ErrQuantityLimit)

	line, err = s.Carts().FindLine(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, cart.MaxQuantity, line.Quantity)
}
