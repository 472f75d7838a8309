package tui

import (
	"context"

	"github.com/vmelnikv/noteshare/models"
)

// AuthService is the authentication surface the login and register screens
// depend on. Implementations are expected to persist the session on success
// so a later run can skip the login flow.
type AuthService interface {
	// Register creates an account and authenticates it in one step.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates existing credentials.
	Login(ctx context.Context, user models.User) (models.User, error)
}

// NoteService is the note surface the main loop depends on.
//
// List methods may return one page of results together with a non-nil error:
// that combination means the server was unreachable and the results come from
// the local cache. The main loop shows such results with the error as a
// status line instead of failing the screen.
type NoteService interface {
	ListCreated(ctx context.Context, page int) (models.Page[models.Note], error)
	ListShared(ctx context.Context, page int) (models.Page[models.Note], error)
	Get(ctx context.Context, noteID int64) (models.Note, error)
	Create(ctx context.Context, input models.NoteInput) (models.Note, error)
	Update(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, noteID int64) error
	Share(ctx context.Context, noteID int64, recipientEmail string) (models.SharedNote, error)
}
