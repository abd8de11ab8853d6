package services

import (
	"testing"
	"time"

	"frydays/cart"
	"frydays/repositories"
	"frydays/utils"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	store  *repositories.MemoryStore
	guests *repositories.MemoryGuestCartStore
	tokens *utils.TokenManager
	carts  *CartService
	auth   *AuthService
	menu   *MenuService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := repositories.NewSeededMemoryStore()
	require.NoError(t, err)

	guests := repositories.NewMemoryGuestCartStore(time.Hour)
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	carts := NewCartService(store, guests, cart.DefaultDeliveryFee)

	return &fixture{
		store:  store,
		guests: guests,
		tokens: tokens,
		carts:  carts,
		auth:   NewAuthService(store.Users(), tokens, carts),
		menu:   NewMenuService(store.MenuItems(), nil, time.Minute),
	}
}
