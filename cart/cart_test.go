package cart

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_SameItemTwiceIncrements(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, 1))
	require.NoError(t, c.Add(1, 1))

	assert.Equal(t, []Line{{MenuItemID: 1, Quantity: 2}}, c.Lines())
}

func TestAdd_QuantityBelowOneCountsAsOne(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(3, 0))
	require.NoError(t, c.Add(3, -4))

	assert.Equal(t, 2, c.Quantity(3))
}

func TestAdd_InvalidID(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Add(0, 1), ErrInvalidItem)
	assert.True(t, c.IsEmpty())
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name string
		qty  int
		want []Line
	}{
		{"positive overrides", 5, []Line{{MenuItemID: 7, Quantity: 5}}},
		{"zero removes", 0, []Line{}},
		{"negative removes", -1, []Line{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			require.NoError(t, c.Add(7, 3))
			require.NoError(t, c.SetQuantity(7, tt.qty))
			assert.Equal(t, tt.want, c.Lines())
		})
	}
}

func TestRemoveAndClear(t *testing.T) {
	c := FromLines([]Line{{1, 1}, {2, 2}, {3, 3}})

	c.Remove(2)
	c.Remove(99)
	assert.Equal(t, []Line{{1, 1}, {3, 3}}, c.Lines())
	assert.Equal(t, 4, c.TotalItems())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
}

func TestOrderOfAddsDoesNotChangeFinalQuantities(t *testing.T) {
	a := New()
	for _, id := range []int{1, 2, 1, 3, 2, 1} {
		require.NoError(t, a.Add(id, 1))
	}
	b := New()
	for _, id := range []int{3, 2, 2, 1, 1, 1} {
		require.NoError(t, b.Add(id, 1))
	}

	for _, id := range []int{1, 2, 3} {
		assert.Equal(t, a.Quantity(id), b.Quantity(id), "item %d", id)
	}
	assert.Equal(t, a.TotalItems(), b.TotalItems())
}

func TestMerge_GuestIntoEmpty(t *testing.T) {
	guest := FromLines([]Line{{MenuItemID: 10, Quantity: 2}, {MenuItemID: 20, Quantity: 1}})
	user := New()

	user.Merge(guest)

	assert.Equal(t, []Line{{MenuItemID: 10, Quantity: 2}, {MenuItemID: 20, Quantity: 1}}, user.Lines())
}

func TestMerge_IncrementsExistingLines(t *testing.T) {
	user := FromLines([]Line{{MenuItemID: 10, Quantity: 1}})
	user.Merge(FromLines([]Line{{MenuItemID: 10, Quantity: 2}, {MenuItemID: 30, Quantity: 4}}))

	assert.Equal(t, 3, user.Quantity(10))
	assert.Equal(t, 4, user.Quantity(30))
	assert.Equal(t, 2, user.Len())
}

func TestSummarize(t *testing.T) {
	lines := []PricedLine{
		{MenuItemID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")},
		{MenuItemID: 2, Quantity: 2, UnitPrice: decimal.RequireFromString("25.90")},
	}

	s := Summarize(lines, DefaultDeliveryFee)

	assert.Equal(t, "52.10", s.Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", s.DeliveryFee.StringFixed(2))
	assert.Equal(t, "57.10", s.Total.StringFixed(2))
	assert.Equal(t, 5, s.TotalItems)
}

func TestSummarize_EmptyCartHasNoFee(t *testing.T) {
	s := Summarize(nil, DefaultDeliveryFee)

	assert.True(t, s.Total.IsZero())
	assert.True(t, s.DeliveryFee.IsZero())
	assert.Equal(t, 0, s.TotalItems)
}

func TestAdd_RejectsQuantityAboveLimit(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, MaxQuantity))

	assert.ErrorIs(t, c.Add(1, 1), ErrQuantityLimit)
	assert.ErrorIs(t, c.Add(2, math.MaxInt), ErrQuantityLimit)
	assert.Equal(t, MaxQuantity, c.Quantity(1))
	assert.False(t, c.Has(2))
}

func TestSetQuantity_RejectsQuantityAboveLimit(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, 2))

	assert.ErrorIs(t, c.SetQuantity(1, MaxQuantity+1), ErrQuantityLimit)
	assert.Equal(t, 2, c.Quantity(1))
}

func TestMerge_CapsAtLimit(t *testing.T) {
	user := FromLines([]Line{{MenuItemID: 1, Quantity: 90}})
	user.Merge(FromLines([]Line{{MenuItemID: 1, Quantity: 20}, {MenuItemID: 2, Quantity: math.MaxInt}}))

	assert.Equal(t, MaxQuantity, user.Quantity(1))
	assert.Equal(t, MaxQuantity, user.Quantity(2))
	assert.Equal(t, 2*MaxQuantity, user.TotalItems())
}
