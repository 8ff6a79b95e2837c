package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSessionFromToken(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tok := signToken(t, jwt.MapClaims{
		"sub":  "user-1",
		"role": "admin",
		"exp":  now.Add(time.Hour).Unix(),
	})

	sess := SessionFromToken(tok, now)
	require.True(t, sess.Authenticated)
	require.Equal(t, "user-1", sess.User.ID)
	require.Equal(t, RoleAdmin, sess.User.Role)
	require.True(t, sess.IsAdmin())
}

func TestSessionFromTokenDefaultsRole(t *testing.T) {
	now := time.Now()
	tok := signToken(t, jwt.MapClaims{
		"sub": "user-2",
		"exp": now.Add(time.Hour).Unix(),
	})

	sess := SessionFromToken(tok, now)
	require.True(t, sess.Authenticated)
	require.Equal(t, RoleUser, sess.User.Role)
	require.False(t, sess.IsAdmin())
}

func TestSessionFromExpiredToken(t *testing.T) {
	now := time.Now()
	tok := signToken(t, jwt.MapClaims{
		"sub": "user-3",
		"exp": now.Add(-time.Hour).Unix(),
	})

	sess := SessionFromToken(tok, now)
	require.False(t, sess.Authenticated)
	require.Nil(t, sess.User)
}

func TestSessionFromGarbage(t *testing.T) {
	require.False(t, SessionFromToken("", time.Now()).Authenticated)
	require.False(t, SessionFromToken("not-a-token", time.Now()).Authenticated)

	// A structurally valid token without a subject is still anonymous.
	tok := signToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	require.False(t, SessionFromToken(tok, time.Now()).Authenticated)
}
