package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, salt, err := HashPassword("Passw0rd")
	require.NoError(t, err)
	assert.Len(t, salt, saltLength)
	assert.Len(t, hash, 64) // SHA-512 digest size

	// A second hash of the same password uses a fresh key
	hash2, salt2, err := HashPassword("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, salt, salt2)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, salt, err := HashPassword("Passw0rd")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("Passw0rd", hash, salt))
	assert.False(t, VerifyPassword("passw0rd", hash, salt))
	assert.False(t, VerifyPassword("", hash, salt))
	assert.False(t, VerifyPassword("Passw0rd", hash, make([]byte, saltLength)))
}
