package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	ok, err := VerifyPassword(hash, "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "654321")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	ok, err := VerifyPassword("not-an-argon-hash", "123456")
	assert.Error(t, err)
	assert.False(t, ok)
}
