package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPasswordHash("hunter2", hash))
	assert.False(t, CheckPasswordHash("hunter3", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("hunter2")
	require.NoError(t, err)

	second, err := HashPassword("hunter2")
	require.NoError(t, err)

	// bcrypt salts every digest
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("hunter2", first))
	assert.True(t, CheckPasswordHash("hunter2", second))
}

func TestCheckPasswordHash_BadDigest(t *testing.T) {
	assert.False(t, CheckPasswordHash("hunter2", "not-a-bcrypt-digest"))
}
