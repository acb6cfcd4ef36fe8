package stores

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/localaddons/addons/internal/client/api"
	"github.com/localaddons/addons/internal/client/models"
	"github.com/localaddons/addons/internal/client/storage"
	"github.com/localaddons/addons/internal/common"
	"github.com/localaddons/addons/internal/logging"
)

// persistedAuth is the durable subset of the auth store's state. Transient
// fields (isLoading) are never persisted and take their zero values at
// rehydration.
type persistedAuth struct {
	User            *models.User `json:"user"`
	Token           string       `json:"token"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// AuthStore owns identity/session state and mediates all credential
// operations against the backend.
//
// Invariant: IsAuthenticated() is true if and only if both the user and the
// token are present and the token passed its last local expiry check. The
// store does not re-check expiry on a timer; consuming guards call
// CheckAuth() explicitly.
type AuthStore struct {
	notifier
	api   api.Client
	store storage.Repository
	log   logging.Logger

	mu              sync.RWMutex
	user            *models.User
	token           string
	isAuthenticated bool
	isLoading       bool
}

func NewAuthStore(ctx context.Context, client api.Client, store storage.Repository, log logging.Logger) *AuthStore {
	s := &AuthStore{api: client, store: store, log: log}
	s.rehydrate(ctx)
	return s
}

// rehydrate restores the persisted session and immediately re-validates it,
// so an expired token never survives a restart as an authenticated session.
func (s *AuthStore) rehydrate(ctx context.Context) {
	data, err := s.store.Get(ctx, common.AuthStorageKey)
	if err != nil {
		s.log.Warn(ctx, "failed to load persisted auth state", "error", err)
		return
	}
	if data == nil {
		return
	}

	var p persistedAuth
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn(ctx, "discarding corrupt persisted auth state", "error", err)
		_ = s.store.Delete(ctx, common.AuthStorageKey)
		return
	}

	s.mu.Lock()
	s.user = p.User
	s.token = p.Token
	s.isAuthenticated = p.IsAuthenticated
	s.mu.Unlock()

	s.CheckAuth(ctx)
}

func (s *AuthStore) persist(ctx context.Context) {
	s.mu.RLock()
	p := persistedAuth{User: s.user, Token: s.token, IsAuthenticated: s.isAuthenticated}
	s.mu.RUnlock()

	data, err := json.Marshal(p)
	if err != nil {
		s.log.Error(ctx, "failed to encode auth state", "error", err)
		return
	}
	if err := s.store.Set(ctx, common.AuthStorageKey, data); err != nil {
		s.log.Error(ctx, "failed to persist auth state", "error", err)
	}
}

// Login authenticates with email-or-mobile plus password. On success the
// user, token and isAuthenticated flip atomically; other stores read the new
// token on their next call. A 400 response surfaces as *api.ValidationError.
func (s *AuthStore) Login(ctx context.Context, creds models.LoginCredentials) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		return err
	}

	s.setSession(&resp.User, resp.Token.AccessToken)
	s.persist(ctx)
	s.notify()
	return nil
}

// Register creates an account. Same contract as Login.
func (s *AuthStore) Register(ctx context.Context, creds models.RegisterCredentials) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.api.Register(ctx, creds)
	if err != nil {
		return err
	}

	s.setSession(&resp.User, resp.Token.AccessToken)
	s.persist(ctx)
	s.notify()
	return nil
}

// Logout clears in-memory session state and removes both persisted snapshots
// (auth and cart), so no stale session survives.
func (s *AuthStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.isAuthenticated = false
	s.mu.Unlock()

	if err := s.store.Delete(ctx, common.AuthStorageKey); err != nil {
		s.log.Error(ctx, "failed to remove persisted auth state", "error", err)
	}
	if err := s.store.Delete(ctx, common.CartStorageKey); err != nil {
		s.log.Error(ctx, "failed to remove persisted cart state", "error", err)
	}
	s.notify()
}

// CheckAuth validates the session locally by decoding the token and checking
// its expiry claim against the current time. It never calls the network and
// trusts the token's self-reported expiry: a server-revoked token that has
// not yet expired will still look authenticated here until the next 401.
// Invalid or absent tokens force the logged-out state.
func (s *AuthStore) CheckAuth(ctx context.Context) bool {
	s.mu.Lock()
	valid := s.user != nil && tokenValid(s.token)
	changed := s.isAuthenticated != valid
	if valid {
		s.isAuthenticated = true
	} else {
		changed = changed || s.user != nil || s.token != ""
		s.user = nil
		s.token = ""
		s.isAuthenticated = false
	}
	s.mu.Unlock()

	if changed {
		s.persist(ctx)
		s.notify()
	}
	return valid
}

// tokenValid decodes the token without verifying its signature (the client
// has no key) and checks that the expiry claim is present and in the future.
func tokenValid(token string) bool {
	if token == "" {
		return false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.After(time.Now())
}

// UpdateProfile patches the profile and replaces the user wholesale with the
// backend's response. Fails with ErrAuthRequired before any network call
// when no token is present.
func (s *AuthStore) UpdateProfile(ctx context.Context, data models.ProfileUpdate) error {
	token := s.Token()
	if token == "" {
		return common.ErrAuthRequired
	}

	user, err := s.api.UpdateProfile(ctx, token, data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
	return nil
}

// UpdatePassword changes the password for the authenticated user.
func (s *AuthStore) UpdatePassword(ctx context.Context, newPassword, confirmPassword string) error {
	token := s.Token()
	if token == "" {
		return common.ErrAuthRequired
	}
	return s.api.ChangePassword(ctx, token, newPassword, confirmPassword)
}

// InitiatePasswordReset starts the unauthenticated reset flow. The email is
// normalized to lower case before submission.
func (s *AuthStore) InitiatePasswordReset(ctx context.Context, email string) error {
	return s.api.InitiatePasswordReset(ctx, normalizeEmail(email))
}

// CompletePasswordReset finishes the reset flow with the emailed token.
func (s *AuthStore) CompletePasswordReset(ctx context.Context, resetToken, newPassword, confirmPassword string) error {
	return s.api.CompletePasswordReset(ctx, resetToken, newPassword, confirmPassword)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthStore) setSession(user *models.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	s.isAuthenticated = true
	s.mu.Unlock()
}

func (s *AuthStore) setLoading(v bool) {
	s.mu.Lock()
	s.isLoading = v
	s.mu.Unlock()
	s.notify()
}

// Token returns the current session token, or "" when logged out.
func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, or nil when logged out.
func (s *AuthStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

func (s *AuthStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// PriceTier returns the pricing tier of the current user.
func (s *AuthStore) PriceTier() models.PriceTier {
	return models.TierForUser(s.User())
}
