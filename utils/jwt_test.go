package utils

import (
	"testing"
	"time"

	"frydays/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	user := models.AuthUser{ID: 42, Email: "ana@frydays.com", Username: "Ana", IsAdmin: true}

	token, err := m.GenerateToken(user)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user, claims.Identity())
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateToken(models.AuthUser{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("one", time.Hour).GenerateToken(models.AuthUser{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewTokenManager("secret", time.Hour).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
