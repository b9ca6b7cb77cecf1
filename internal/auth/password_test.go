package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, salt, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.Len(t, salt, saltLength)
	require.Len(t, hash, keyLength)

	assert.True(t, VerifyPassword("correct horse battery staple", hash, salt))
	assert.False(t, VerifyPassword("wrong password", hash, salt))
}

func TestVerifyPasswordRejectsPrefix(t *testing.T) {
	hash, salt, err := HashPassword("supersecret123")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("supersecret", hash, salt))
	assert.False(t, VerifyPassword("", hash, salt))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	hash1, salt1, err := HashPassword("same password")
	require.NoError(t, err)

	hash2, salt2, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}
