package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, "ana@example.com", RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(testSecret, token)
	require.NoError(t, err)

	identity := claims.Identity()
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.True(t, identity.IsStaff)
}

func TestValidateTokenRejects(t *testing.T) {
	expired, err := GenerateToken(testSecret, 1, "a@b.c", "customer", -time.Minute)
	require.NoError(t, err)

	wrongKey, err := GenerateToken("other-secret", 1, "a@b.c", "customer", time.Hour)
	require.NoError(t, err)

	noUser, err := GenerateToken(testSecret, 0, "a@b.c", "customer", time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":   expired,
		"wrong key": wrongKey,
		"no user":   noUser,
		"alg none":  none,
		"garbage":   "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateToken(testSecret, token)
			assert.Error(t, err)
		})
	}
}

func TestCustomerRoleIsNotStaff(t *testing.T) {
	claims := &Claims{UserID: 7, Role: "customer"}
	assert.False(t, claims.Identity().IsStaff)
}
