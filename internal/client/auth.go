package client

import (
	"context"
	"errors"
	"time"

	"github.com/vmelnikv/noteshare/internal/adapter"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/models"
)

// authService authenticates against the server and persists the resulting
// session locally so the next run can skip the login flow.
type authService struct {
	server   adapter.ServerAdapter
	sessions store.SessionRepository
	logger   *logger.Logger
}

func newAuthService(server adapter.ServerAdapter, sessions store.SessionRepository, logger *logger.Logger) *authService {
	return &authService{server: server, sessions: sessions, logger: logger}
}

// Register creates an account on the server. Registration authenticates the
// new account in the same step; the session is persisted on success.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	registered, err := a.server.Register(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	a.persistSession(ctx, registered)
	return registered, nil
}

// Login authenticates existing credentials and persists the session.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	authenticated, err := a.server.Login(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	a.persistSession(ctx, authenticated)
	return authenticated, nil
}

// RestoreSession loads the persisted session, if any, and primes the adapter
// with its bearer token. The token is not re-validated here: an expired one
// surfaces as an unauthorized error on the first request.
func (a *authService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.server.SetToken(session.Token)
	return session, nil
}

// Logout drops the adapter token and removes the persisted session.
func (a *authService) Logout(ctx context.Context) error {
	a.server.SetToken("")

	if err := a.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, store.ErrNoSessionFound) {
		return err
	}
	return nil
}

// persistSession is best-effort: a failure to save means the user logs in
// again next run, nothing worse.
func (a *authService) persistSession(ctx context.Context, user models.User) {
	session := models.Session{
		UserID:    user.UserID,
		Username:  user.Username,
		Token:     a.server.Token(),
		CreatedAt: time.Now(),
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Str("func", "persistSession").Msg("session was not persisted")
	}
}
