package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, err := svc.Generate("u1", "acme", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "acme", claims.OrgSlug)
	assert.Equal(t, "admin", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 15).Generate("u1", "acme", "member")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 15).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, err := svc.Generate("u1", "acme", "member")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}
