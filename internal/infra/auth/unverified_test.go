package auth

import (
	"testing"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeClaimsUnsafe_RoundTrip(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, _, err := jwtService.GenerateTokens(userID, []string{"owner"})
	require.NoError(t, err)

	identity, ok := DecodeClaimsUnsafe(accessToken)
	require.True(t, ok)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, entity.Roles{entity.RoleOwner}, identity.Roles)
	assert.True(t, identity.Authenticated)
}

func TestDecodeClaimsUnsafe_Garbage(t *testing.T) {
	tests := []string{
		"",
		"only-one-part",
		"a.b",
		"a.!!!.c",
		"a.bm90LWpzb24.c", // payload decodes but is not JSON
	}

	for _, token := range tests {
		identity, ok := DecodeClaimsUnsafe(token)
		assert.False(t, ok, "token %q", token)
		assert.False(t, identity.Authenticated)
	}
}

func TestDecodeClaimsUnsafe_DropsUnknownRoles(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), []string{"superuser", "admin"})
	require.NoError(t, err)

	identity, ok := DecodeClaimsUnsafe(accessToken)
	require.True(t, ok)
	assert.Equal(t, entity.Roles{entity.RoleAdmin}, identity.Roles)
}
