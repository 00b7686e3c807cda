package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltedOutput(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)

	// Same plaintext, different stored values; both still verify.
	assert.NotEqual(t, h1, h2)
	assert.True(t, CompareHashAndPassword(h1, "secret123"))
	assert.True(t, CompareHashAndPassword(h2, "secret123"))
}

func TestCompareHashAndPassword_Mismatch(t *testing.T) {
	h, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.False(t, CompareHashAndPassword(h, "wrong"))
	assert.False(t, CompareHashAndPassword(h, ""))
}

func TestCompareHashAndPassword_MalformedHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "secret123"))
}
