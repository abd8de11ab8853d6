package services

import (
	"context"
	"testing"

	"frydays/cart"
	"frydays/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = 2

func TestCartService_AddSameItemTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.Add(ctx, testUserID, 1, 1)
	require.NoError(t, err)
	view, err := f.carts.Add(ctx, testUserID, 1, 1)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "51.80", view.Subtotal.String())
	assert.Equal(t, "5.00", view.DeliveryFee.String())
	assert.Equal(t, "56.80", view.Total.String())
	assert.Equal(t, 2, view.TotalItems)
}

func TestCartService_AddUnknownItem(t *testing.T) {
	f := newFixture(t)

	_, err := f.carts.Add(context.Background(), testUserID, 404, 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartService_SetQuantityZeroRemovesLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.carts.Add(ctx, testUserID, 3, 2)
	require.NoError(t, err)
	cartID := view.Items[0].CartID

	view, err = f.carts.SetQuantity(ctx, testUserID, cartID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestCartService_PricingIsExact(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.Add(ctx, testUserID, 1, 3)
	require.NoError(t, err)
	view, err := f.carts.Add(ctx, testUserID, 6, 1)
	require.NoError(t, err)

	assert.Equal(t, "82.70", view.Subtotal.String())
	assert.Equal(t, "87.70", view.Total.String())
	assert.Equal(t, "77.70", view.Items[0].LineTotal.String())
}

func TestCartService_MergeGuestIntoEmptyCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.GuestAdd(ctx, "sess-1", 1, 2)
	require.NoError(t, err)
	_, err = f.carts.GuestAdd(ctx, "sess-1", 3, 1)
	require.NoError(t, err)

	result, err := f.carts.MergeGuest(ctx, testUserID, "sess-1", nil)
	require.NoError(t, err)
	assert.Equal(t, &MergeResult{Merged: 2, Skipped: 0}, result)

	view, err := f.carts.View(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 1, view.Items[0].ID)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 3, view.Items[1].ID)
	assert.Equal(t, 1, view.Items[1].Quantity)

	guest, err := f.carts.GuestView(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, guest.Items)
}

func TestCartService_MergeIncrementsAndSkipsUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.Add(ctx, testUserID, 1, 1)
	require.NoError(t, err)

	result, err := f.carts.MergeGuest(ctx, testUserID, "", []cart.Line{
		{MenuItemID: 1, Quantity: 2},
		{MenuItemID: 999, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Merged)
	assert.Equal(t, 1, result.Skipped)

	line, err := f.store.Carts().FindLine(ctx, testUserID, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity)
}

func TestCartService_GuestOperations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.GuestAdd(ctx, "s", 404, 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	view, err := f.carts.GuestAdd(ctx, "s", 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.Zero(t, view.Items[0].CartID)

	view, err = f.carts.GuestSetQuantity(ctx, "s", 5, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, view.TotalItems)
	assert.Equal(t, "53.00", view.Total.String())

	_, err = f.carts.GuestRemove(ctx, "s", 6)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	view, err = f.carts.GuestSetQuantity(ctx, "s", 5, -1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.DeliveryFee.IsZero())
}

func TestCartService_QuantityLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.Add(ctx, testUserID, 1, 90)
	require.NoError(t, err)

	_, err = f.carts.Add(ctx, testUserID, 1, 10)
	assert.ErrorIs(t, err, cart.ErrQuantityLimit)

	result, err := f.carts.MergeGuest(ctx, testUserID, "", []cart.Line{{MenuItemID: 1, Quantity: 50}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Merged)

	view, err := f.carts.View(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, cart.MaxQuantity, view.Items[0].Quantity)
	assert.True(t, view.Subtotal.IsPositive())

	_, err = f.carts.GuestAdd(ctx, "s", 5, cart.MaxQuantity)
	require.NoError(t, err)
	_, err = f.carts.GuestAdd(ctx, "s", 5, 1)
	assert.ErrorIs(t, err, cart.ErrQuantityLimit)

	view, err = f.carts.GuestView(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, cart.MaxQuantity, view.TotalItems)
}
