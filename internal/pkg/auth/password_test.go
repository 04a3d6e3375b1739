package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("markh123")
	require.NoError(t, err)

	assert.NotEqual(t, "markh123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.True(t, CheckPassword(hash, "markh123"))
	assert.False(t, CheckPassword(hash, "markh124"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPassword_NotAHash(t *testing.T) {
	assert.False(t, CheckPassword("plaintext", "plaintext"))
}
