// Package service provides typed façades over the API gateway client,
// one per backend resource family.
package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/candidatrack/candidatrack-go/internal/apiclient"
	"github.com/candidatrack/candidatrack-go/internal/model"
	"github.com/candidatrack/candidatrack-go/internal/session"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles authentication against /auth and keeps the
// session store in step with the backend.
type AuthService struct {
	client *apiclient.Client
	store  *session.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(client *apiclient.Client, store *session.Store) *AuthService {
	return &AuthService{client: client, store: store}
}

// Login authenticates against the backend and, on success, populates
// the session store with the returned profile and token.
func (s *AuthService) Login(ctx context.Context, username, password string) (model.UserProfile, error) {
	resp, err := apiclient.Post[model.AuthResponse](ctx, s.client, "/auth/login", model.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		if apiclient.IsStatus(err, http.StatusUnauthorized) || apiclient.IsStatus(err, http.StatusForbidden) {
			return model.UserProfile{}, ErrInvalidCredentials
		}
		return model.UserProfile{}, err
	}

	profile := resp.Profile()
	s.store.Login(profile, resp.Token)
	return profile, nil
}

// Register creates an account and logs the new user in.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserProfile, error) {
	resp, err := apiclient.Post[model.AuthResponse](ctx, s.client, "/auth/register", req)
	if err != nil {
		return model.UserProfile{}, err
	}

	profile := resp.Profile()
	s.store.Login(profile, resp.Token)
	return profile, nil
}

// Logout tells the backend to revoke the session, then clears local
// state. The local clear happens even when the backend call fails; a
// dead server must not pin a client to a stale session.
func (s *AuthService) Logout(ctx context.Context) {
	if s.store.IsAuthenticated() {
		if _, err := apiclient.Post[struct{}](ctx, s.client, "/auth/logout", nil); err != nil {
			slog.Debug("backend logout failed, clearing local session anyway", "error", err)
		}
	}
	s.store.Logout()
}

// Me fetches the authenticated user's profile from the backend.
func (s *AuthService) Me(ctx context.Context) (model.UserProfile, error) {
	return apiclient.Get[model.UserProfile](ctx, s.client, "/auth/me", nil)
}
