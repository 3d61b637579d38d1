package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	PasswordCost = bcrypt.MinCost
	t.Cleanup(func() { PasswordCost = bcrypt.DefaultCost })

	hash, err := HashPassword("camp2024")
	require.NoError(t, err)
	assert.NotEqual(t, "camp2024", hash)
	assert.True(t, CheckPasswordHash("camp2024", hash))
	assert.False(t, CheckPasswordHash("camp2025", hash))
	assert.False(t, CheckPasswordHash("camp2024", ""))

	_, err = HashPassword(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
