package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/models"
)

// TUI runs the terminal interface of the client.
type TUI struct {
	auth   AuthService
	notes  NoteService
	logger *logger.Logger
}

func New(auth AuthService, notes NoteService, logger *logger.Logger) (*TUI, error) {
	return &TUI{auth: auth, notes: notes, logger: logger}, nil
}

// LoginFlow runs the authentication program: menu, login and register pages.
// It returns the authenticated user, or [ErrUserQuit] if the user quit
// without signing in.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.auth),
		"register": NewRegisterModel(ctx, t.auth),
	}

	root := NewRootModel(pages, "menu")
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the authenticated program for user. It reports whether the
// user asked to log out (as opposed to quitting the client).
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.notes, user)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
