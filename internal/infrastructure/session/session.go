package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/tiendapos/terminal/internal/domain/identity"
)

// AllStoresID is the sentinel store selection meaning "no store filter".
// Checkout requires a concrete store; order listings accept the sentinel.
const AllStoresID = "all"

// StoreSelection is the store the operator is working against
type StoreSelection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IsAllStores reports whether the selection is the all-stores sentinel
func (s StoreSelection) IsAllStores() bool {
	return s.ID == "" || s.ID == AllStoresID
}

// state is the persisted session shape
type state struct {
	Token string         `json:"token,omitempty"`
	User  *identity.User `json:"user,omitempty"`
	Store StoreSelection `json:"store"`
}

// Session holds the operator's login and store selection across terminal
// restarts. It is safe for concurrent use and persists to a JSON file.
type Session struct {
	mu     sync.RWMutex
	path   string
	logger *zap.Logger
	state  state
}

// New creates a session backed by the file at path. Call Load to restore a
// previous session.
func New(path string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{path: path, logger: logger}
}

// Load restores the session from disk. A missing file leaves the session
// empty and is not an error.
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("session: failed to read %s: %w", s.path, err)
	}

	var st state
	if err := json.Unmarshal(raw, &st); err != nil {
		s.logger.Warn("discarding corrupt session file", zap.String("path", s.path), zap.Error(err))
		return nil
	}

	s.state = st
	return nil
}

// save writes the session to disk atomically. Callers must hold the lock.
func (s *Session) save() error {
	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("session: failed to encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("session: failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("session: failed to write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session: failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return fmt.Errorf("session: failed to set permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("session: failed to replace %s: %w", s.path, err)
	}
	return nil
}

// SetAuth stores the access token and operator after a successful login
func (s *Session) SetAuth(token string, user identity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	s.state.User = &user
	return s.save()
}

// Token returns the current access token, or "" when logged out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// User returns the logged-in operator, or nil when logged out
func (s *Session) User() *identity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// IsAuthenticated reports whether a token is present and not expired
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	token := s.state.Token
	s.mu.RUnlock()
	if token == "" {
		return false
	}
	expiry, err := tokenExpiry(token)
	if err != nil {
		// Opaque tokens stay valid until the backend rejects them
		return true
	}
	return expiry.After(time.Now())
}

// TokenExpiry returns the expiry claim of the stored token. The token is not
// verified here; only the backend can vouch for it.
func (s *Session) TokenExpiry() (time.Time, error) {
	s.mu.RLock()
	token := s.state.Token
	s.mu.RUnlock()
	if token == "" {
		return time.Time{}, errors.New("session: not logged in")
	}
	return tokenExpiry(token)
}

func tokenExpiry(token string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("session: failed to parse token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("session: token has no expiry claim")
	}
	return exp.Time, nil
}

// SelectStore records the store the operator is working against
func (s *Session) SelectStore(selection StoreSelection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Store = selection
	return s.save()
}

// Store returns the current store selection
func (s *Session) Store() StoreSelection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Store
}

// StoreID returns the selected store ID, or "" when the all-stores sentinel
// is active.
func (s *Session) StoreID() string {
	sel := s.Store()
	if sel.IsAllStores() {
		return ""
	}
	return sel.ID
}

// Clear wipes the session on logout, removing the backing file
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: failed to remove %s: %w", s.path, err)
	}
	return nil
}
