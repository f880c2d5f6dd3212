package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rafiaprilian/wifiq-client/internal/client"
	"github.com/rafiaprilian/wifiq-client/internal/credentials"
	"github.com/rafiaprilian/wifiq-client/internal/models"
)

// SessionStore holds the current user and drives the credential
// lifecycle: login, registration, session check, logout.
// Authentication status is always derived from the credential store,
// never cached, so a token cleared elsewhere is observed immediately.
type SessionStore struct {
	state

	client *client.Client
	creds  credentials.Store
	nav    Navigator
	logger *logrus.Logger

	user *models.User
}

// NewSessionStore creates a SessionStore. nav may be nil when the
// caller does not care about navigation.
func NewSessionStore(
	c *client.Client,
	creds credentials.Store,
	nav Navigator,
	logger *logrus.Logger,
) *SessionStore {
	if nav == nil {
		nav = nopNavigator
	}
	return &SessionStore{
		client: c,
		creds:  creds,
		nav:    nav,
		logger: logger,
	}
}

// User returns the current user, or nil when anonymous.
func (s *SessionStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a bearer credential is stored. The
// credential store is consulted on every call.
func (s *SessionStore) IsAuthenticated() bool {
	return s.creds.HasToken()
}

// Token returns the stored bearer token, or empty when anonymous.
func (s *SessionStore) Token() string {
	token, err := s.creds.Token()
	if err != nil {
		return ""
	}
	return token
}

// Login authenticates against POST /login, persists the returned
// token, refreshes the user via the session check, and navigates to
// the role-appropriate dashboard. Failures are normalized into the
// store's error state and returned.
func (s *SessionStore) Login(ctx context.Context, req models.LoginRequest) error {
	return s.run(func() error {
		env, err := s.client.Call(ctx, http.MethodPost, "/login", nil, req)
		if err != nil {
			return err
		}

		var auth models.AuthToken
		if err := env.DecodeData(&auth); err != nil {
			return err
		}
		if err := s.creds.SetToken(auth.Token); err != nil {
			return fmt.Errorf("failed to persist credential: %w", err)
		}

		s.CheckAuth(ctx)

		if s.User().IsAdmin() {
			s.nav.Push(RouteAdminDashboard)
		} else {
			s.nav.Push(RouteAppDashboard)
		}
		return nil
	})
}

// Register creates an account via POST /register, then follows the
// same persist + session check sequence as Login before navigating to
// the user dashboard.
func (s *SessionStore) Register(ctx context.Context, req models.RegisterRequest) error {
	return s.run(func() error {
		env, err := s.client.Call(ctx, http.MethodPost, "/register", nil, req)
		if err != nil {
			return err
		}

		var auth models.AuthToken
		if err := env.DecodeData(&auth); err != nil {
			return err
		}
		if err := s.creds.SetToken(auth.Token); err != nil {
			return fmt.Errorf("failed to persist credential: %w", err)
		}

		s.CheckAuth(ctx)

		s.nav.Push(RouteAppDashboard)
		return nil
	})
}

// CheckAuth refreshes the current user from GET /me. Any failure —
// network, 401, malformed body — is treated as "not authenticated":
// the stored credential is cleared and the user reset. The failure
// detail is discarded on purpose.
func (s *SessionStore) CheckAuth(ctx context.Context) {
	env, err := s.client.Call(ctx, http.MethodGet, "/me", nil, nil)
	if err == nil {
		var user models.User
		if decodeErr := env.DecodeData(&user); decodeErr == nil {
			s.setUser(&user)
			return
		}
		err = fmt.Errorf("malformed session-check response")
	}

	s.logger.WithError(err).Debug("Session check failed, clearing credential")
	if clearErr := s.creds.Clear(); clearErr != nil {
		s.logger.WithError(clearErr).Warn("Failed to clear credential after session check failure")
	}
	s.setUser(nil)
}

// Logout invalidates the server-side session, then clears the local
// credential and user and navigates to the login route. A failed
// server call is logged but never blocks the local clear.
func (s *SessionStore) Logout(ctx context.Context) error {
	return s.run(func() error {
		if _, err := s.client.Call(ctx, http.MethodPost, "/logout", nil, nil); err != nil {
			s.logger.WithError(err).Warn("Server-side logout failed, clearing local session anyway")
		}

		if err := s.creds.Clear(); err != nil {
			return err
		}
		s.setUser(nil)
		s.nav.Push(RouteLogin)
		return nil
	})
}

func (s *SessionStore) setUser(user *models.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}
