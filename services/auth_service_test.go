package services

import (
	"context"
	"testing"

	"frydays/models"
	"frydays/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, req := range []models.RegisterRequest{
		{Email: "admin@frydays.com", Password: "whatever", Username: "Someone"},
		{Email: "user@teste.com", Password: "abcdef", Username: "Other"},
	} {
		_, err := f.auth.Register(ctx, req)
		assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
	}
}

func TestAuthService_RegisterIssuesToken(t *testing.T) {
	f := newFixture(t)

	resp, err := f.auth.Register(context.Background(), models.RegisterRequest{
		Email: "novo@frydays.com", Password: "segredo", Username: "Novo",
	})
	require.NoError(t, err)
	assert.False(t, resp.User.IsAdmin)

	claims, err := f.tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "novo@frydays.com", claims.Email)
}

func TestAuthService_LoginTokenResolvesToSameIdentity(t *testing.T) {
	f := newFixture(t)

	resp, err := f.auth.Login(context.Background(), models.LoginRequest{
		Email: "admin@frydays.com", Password: repositories.DemoPassword,
	})
	require.NoError(t, err)

	claims, err := f.tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.AuthUser{ID: 1, Email: "admin@frydays.com", Username: "Admin Fryday", IsAdmin: true}, claims.Identity())
	assert.Nil(t, resp.Cart)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Login(ctx, models.LoginRequest{Email: "admin@frydays.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, models.LoginRequest{Email: "ghost@frydays.com", Password: "123456"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginMergesGuestCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.GuestAdd(ctx, "guest-session", 4, 2)
	require.NoError(t, err)

	resp, err := f.auth.Login(ctx, models.LoginRequest{
		Email:       "user@teste.com",
		Password:    repositories.DemoPassword,
		GuestCartID: "guest-session",
		GuestCart:   []models.CartLineRequest{{MenuItemID: 5, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.MergedItems)
	require.NotNil(t, resp.Cart)
	assert.Equal(t, 3, resp.Cart.TotalItems)
	assert.Equal(t, "42.00", resp.Cart.Subtotal.String())
}
