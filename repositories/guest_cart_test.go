package repositories

import (
	"context"
	"testing"
	"time"

	"frydays/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGuestCartStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryGuestCartStore(time.Hour)

	c, err := s.Load(ctx, "unknown")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	require.NoError(t, c.Add(1, 2))
	require.NoError(t, c.Add(3, 1))
	require.NoError(t, s.Save(ctx, "sess", c))

	loaded, err := s.Load(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, []cart.Line{{MenuItemID: 1, Quantity: 2}, {MenuItemID: 3, Quantity: 1}}, loaded.Lines())

	require.NoError(t, s.Delete(ctx, "sess"))
	loaded, err = s.Load(ctx, "sess")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestMemoryGuestCartStore_Expires(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryGuestCartStore(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, "sess", cart.FromLines([]cart.Line{{MenuItemID: 1, Quantity: 1}})))

	now = now.Add(2 * time.Minute)
	c, err := s.Load(ctx, "sess")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}
