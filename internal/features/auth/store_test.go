package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(filepath.Join(t.TempDir(), "token"), zap.NewNop())
}

func TestManagerLoginLogout(t *testing.T) {
	m := newTestManager(t)
	require.False(t, m.Current().Authenticated)

	tok := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	sess, err := m.Login(tok)
	require.NoError(t, err)
	require.True(t, sess.Authenticated)

	require.True(t, m.Current().Authenticated)
	require.Equal(t, "user-1", m.Current().UserID())
	require.Equal(t, tok, m.Token())

	require.NoError(t, m.Logout())
	require.False(t, m.Current().Authenticated)
	require.Empty(t, m.Token())
}

func TestManagerRejectsBadToken(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Login("garbage")
	require.Error(t, err)
	require.False(t, m.Current().Authenticated)

	expired := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	_, err = m.Login(expired)
	require.Error(t, err)
}

func TestLogoutWhenNotLoggedIn(t *testing.T) {
	m := newTestManager(t)
	require.ErrorIs(t, m.Logout(), ErrNotLoggedIn)
}

func TestCurrentIsDerivedFresh(t *testing.T) {
	m := newTestManager(t)

	userTok := signToken(t, jwt.MapClaims{
		"sub": "user-1", "role": "user",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	adminTok := signToken(t, jwt.MapClaims{
		"sub": "user-1", "role": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := m.Login(userTok)
	require.NoError(t, err)
	require.False(t, m.Current().IsAdmin())

	// A role change lands on the next check, not after a restart.
	_, err = m.Login(adminTok)
	require.NoError(t, err)
	require.True(t, m.Current().IsAdmin())
}
