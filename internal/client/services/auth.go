// Package services contains application services for the tasknotes client.
// This file defines the authentication service: login, logout and a local
// view of the stored session.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tasknotes/internal/client/api"
	"github.com/dmitrijs2005/tasknotes/internal/client/resources"
	"github.com/dmitrijs2005/tasknotes/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Gateway is the part of api.Facade the auth service needs.
type Gateway interface {
	Resources() (*api.Resources, error)
	UpdateHeader(ctx context.Context) error
}

// Session persists the bearer token between runs.
// storage.SessionStore is the production implementation.
type Session interface {
	Token(ctx context.Context) (string, error)
	Username(ctx context.Context) (string, error)
	Save(ctx context.Context, username, token string) error
	Clear(ctx context.Context) error
}

// Status describes the stored session. Claims are read without verifying
// the signature; they are informational only.
type Status struct {
	LoggedIn  bool
	Username  string
	Subject   string
	ExpiresAt *time.Time
	Expired   bool
	// Opaque is set when the token is not a JWT.
	Opaque bool
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token, persist it, refresh headers.
//   - Logout: revoke the token on the server, forget it locally, refresh headers.
//   - Status: inspect the locally stored token.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) (*Status, error)
}

type authService struct {
	gateway Gateway
	session Session
	logger  logging.Logger
	now     func() time.Time
}

// NewAuthService constructs an AuthService bound to the facade and the
// local session store.
func NewAuthService(g Gateway, s Session, l logging.Logger) AuthService {
	return &authService{gateway: g, session: s, logger: l, now: time.Now}
}

// Login posts the credentials to the auth endpoint. On success the token is
// saved and the Authorization header is refreshed, so every handle sends it
// from the next request on.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	res, err := a.gateway.Resources()
	if err != nil {
		return err
	}

	token, err := res.User.Login(ctx, username, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.session.Save(ctx, username, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}

	if err := a.gateway.UpdateHeader(ctx); err != nil {
		return fmt.Errorf("header update error: %w", err)
	}

	a.logger.Info(ctx, "logged in", "username", username)
	return nil
}

// Logout asks the server to revoke the token and forgets it locally even when
// the server call fails. A server that already considers the token invalid
// is not an error. Other server errors are returned after local cleanup.
func (a *authService) Logout(ctx context.Context) error {
	res, err := a.gateway.Resources()
	if err != nil {
		return err
	}

	remoteErr := res.User.Logout(ctx)
	if errors.Is(remoteErr, resources.ErrUnauthorized) {
		remoteErr = nil
	}
	if remoteErr != nil {
		a.logger.Warn(ctx, "server logout failed, clearing local session", "error", remoteErr)
	}

	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}

	if err := a.gateway.UpdateHeader(ctx); err != nil {
		return fmt.Errorf("header update error: %w", err)
	}

	if remoteErr != nil {
		return fmt.Errorf("logout error: %w", remoteErr)
	}
	a.logger.Info(ctx, "logged out")
	return nil
}

// Status reads the stored session. It does not contact the server.
func (a *authService) Status(ctx context.Context) (*Status, error) {
	token, err := a.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return &Status{}, nil
	}

	username, err := a.session.Username(ctx)
	if err != nil {
		return nil, err
	}

	st := &Status{LoggedIn: true, Username: username}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		st.Opaque = true
		return st, nil
	}

	st.Subject = claims.Subject
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		st.ExpiresAt = &exp
		st.Expired = !a.now().Before(exp)
	}
	return st, nil
}
