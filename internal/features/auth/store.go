package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrNotLoggedIn means no token is stored.
var ErrNotLoggedIn = errors.New("not logged in")

// Manager persists the bearer token on disk and derives the current Session
// from it. Sessions are derived fresh on every call so role or identity
// changes between checks are always observed.
type Manager struct {
	path string
	log  *zap.Logger
}

// NewManager creates a session manager storing its token at path.
func NewManager(path string, log *zap.Logger) *Manager {
	return &Manager{path: path, log: log}
}

// Current returns the session derived from the stored token. It never
// caches: the token file is re-read and re-decoded on each call.
func (m *Manager) Current() Session {
	return SessionFromToken(m.Token(), time.Now())
}

// Token returns the stored bearer token, or "" when logged out.
func (m *Manager) Token() string {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Login stores a token obtained out of band. The token must at least decode
// to an authenticated session.
func (m *Manager) Login(token string) (Session, error) {
	token = strings.TrimSpace(token)
	sess := SessionFromToken(token, time.Now())
	if !sess.Authenticated {
		return Anonymous, errors.New("token is not a valid, unexpired session token")
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return Anonymous, fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(m.path, []byte(token), 0o600); err != nil {
		return Anonymous, fmt.Errorf("failed to store token: %w", err)
	}

	m.log.Info("logged in", zap.String("user", sess.UserID()))
	return sess, nil
}

// Logout removes the stored token.
func (m *Manager) Logout() error {
	err := os.Remove(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotLoggedIn
	}
	if err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	m.log.Info("logged out")
	return nil
}
