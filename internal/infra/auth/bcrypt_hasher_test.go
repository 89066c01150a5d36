package auth

import (
	"testing"

	"directory/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: config.AuthConfig{BcryptCost: 4}})

	hash, err := hasher.Hash("sup3r-secret")
	require.NoError(t, err)
	assert.NotEqual(t, "sup3r-secret", hash)

	assert.True(t, hasher.Check("sup3r-secret", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	// Out-of-range configured cost falls back to the bcrypt default.
	hasher := NewBcryptHasher(&config.Config{Auth: config.AuthConfig{BcryptCost: 99}})

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.True(t, hasher.Check("pw", hash))
}
