package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmelnikv/noteshare/internal/adapter"
	"github.com/vmelnikv/noteshare/internal/config"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/internal/tui"
	"github.com/vmelnikv/noteshare/models"
)

// App is the client application: local storage, server adapter and terminal
// UI wired together.
type App struct {
	auth   *authService
	notes  *noteService
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	server, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	auth := newAuthService(server, storages.SessionRepository, logger)
	notes := newNoteService(server, storages.NoteCacheRepository, logger)

	ui, err := tui.New(auth, notes, logger)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{auth: auth, notes: notes, tui: ui, logger: logger}, nil
}

// Run drives the client lifecycle: restore or establish a session, run the
// main loop, and start over after a logout. A quit from the login flow exits
// cleanly.
func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.restoreOrLogin(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.notes.SetUser(user.UserID)

	logout, err := a.tui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		if err = a.auth.Logout(ctx); err != nil {
			a.logger.Err(err).Str("func", "Run").Msg("error during logout")
		}
		return a.Run()
	}

	return nil
}

func (a *App) restoreOrLogin(ctx context.Context) (models.User, error) {
	session, err := a.auth.RestoreSession(ctx)
	if err == nil {
		a.logger.Info().Str("func", "restoreOrLogin").Str("username", session.Username).Msg("session restored")
		return models.User{UserID: session.UserID, Username: session.Username}, nil
	}
	if !errors.Is(err, store.ErrNoSessionFound) {
		a.logger.Err(err).Str("func", "restoreOrLogin").Msg("error restoring session")
	}

	return a.tui.LoginFlow(ctx)
}
