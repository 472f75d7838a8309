package service

import (
	"context"

	"github.com/vmelnikv/noteshare/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	// Register creates a new user account. The Password field of user must
	// hold the plain-text password; it is hashed before storage.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates by username and plain-text password.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// Access is the outcome of an access resolution.
type Access int

const (
	// AccessDenied means the requester may not perform the intended
	// operation. Callers surface it as a not-found condition so that the
	// response does not reveal whether the note exists.
	AccessDenied Access = iota

	// AccessOwner means the requester owns the note.
	AccessOwner

	// AccessSharedReader means the requester holds a read grant on someone
	// else's note.
	AccessSharedReader
)

// Intent is the operation the requester wants to perform.
type Intent int

const (
	IntentRead Intent = iota
	IntentWrite
	IntentDelete
)

// AccessResolver decides whether a requester may act on a note.
//
// Ownership grants every intent. A share grant allows IntentRead only; write
// and delete intents never consult grants. A denied resolution returns
// [github.com/vmelnikv/noteshare/internal/store.ErrNoteNotFound] so callers
// cannot distinguish a foreign note from a nonexistent one.
type AccessResolver interface {
	Resolve(ctx context.Context, requesterID, noteID int64, intent Intent) (models.Note, Access, error)
}

// NoteService handles note CRUD and the paginated listings.
type NoteService interface {
	// Create persists a new note owned by ownerID.
	Create(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error)

	// Get returns the note when the requester owns it or holds a read grant.
	Get(ctx context.Context, requesterID, noteID int64) (models.Note, error)

	// Update applies the non-nil fields of update to the requester's own
	// note.
	Update(ctx context.Context, requesterID, noteID int64, update models.NoteUpdate) (models.Note, error)

	// Delete removes the requester's own note and all grants referencing it.
	Delete(ctx context.Context, requesterID, noteID int64) error

	// ListOwned returns one page of notes owned by ownerID, newest first.
	ListOwned(ctx context.Context, ownerID int64, page int) (models.Page[models.Note], error)

	// ListShared returns one page of notes shared with recipientID, newest
	// first.
	ListShared(ctx context.Context, recipientID int64, page int) (models.Page[models.Note], error)
}

// ShareService handles granting read access to other users.
type ShareService interface {
	// Share grants the user identified by recipientEmail read access to the
	// owner's note.
	Share(ctx context.Context, ownerID, noteID int64, recipientEmail string) (models.SharedNote, error)
}

// Notifier accepts domain events for asynchronous, best-effort delivery.
// Emit never blocks the caller.
type Notifier interface {
	Emit(event models.NoteEvent)
}
