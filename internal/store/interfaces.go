package store

import (
	"context"

	"github.com/vmelnikv/noteshare/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/store_mocks.go -package=mocks

// UserRepository provides access to user identity records.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns [ErrUserAlreadyExists] when the username or
	// email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username, or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByEmail returns the user with the given email, or
	// [ErrNoUserWasFound]. Used by the sharing flow to resolve recipients.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository provides access to note records.
//
// Listing queries carry explicit filter, order, and pagination semantics:
// results are ordered by created_at descending and sliced by limit/offset.
type NoteRepository interface {
	// CreateNote persists a new note and returns it with NoteID and
	// CreatedAt populated.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNote returns the note with the given ID regardless of ownership,
	// or [ErrNoteNotFound]. Callers are responsible for access control.
	GetNote(ctx context.Context, noteID int64) (models.Note, error)

	// GetNoteOwned returns the note only when it exists AND is owned by
	// ownerID; otherwise [ErrNoteNotFound].
	GetNoteOwned(ctx context.Context, noteID, ownerID int64) (models.Note, error)

	// UpdateNote applies the non-nil fields of update to the note identified
	// by (noteID, ownerID) and returns the updated row, or [ErrNoteNotFound]
	// when no such owned note exists.
	UpdateNote(ctx context.Context, noteID, ownerID int64, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes the note identified by (noteID, ownerID) together
	// with all share grants referencing it, in a single transaction.
	// Returns [ErrNoteNotFound] when no such owned note exists.
	DeleteNote(ctx context.Context, noteID, ownerID int64) error

	// ListOwned returns one page of notes owned by ownerID, newest first.
	ListOwned(ctx context.Context, ownerID int64, limit, offset uint64) ([]models.Note, error)

	// CountOwned returns the total number of notes owned by ownerID.
	CountOwned(ctx context.Context, ownerID int64) (int64, error)

	// ListSharedWith returns one page of notes shared with recipientID,
	// ordered by the underlying note's created_at descending.
	ListSharedWith(ctx context.Context, recipientID int64, limit, offset uint64) ([]models.Note, error)

	// CountSharedWith returns the total number of notes shared with
	// recipientID.
	CountSharedWith(ctx context.Context, recipientID int64) (int64, error)
}

// ShareRepository provides access to share grants.
type ShareRepository interface {
	// CreateShare persists a new grant and returns it with ShareID and
	// SharedAt populated. Returns [ErrDuplicateShare] when a grant for the
	// same (note, recipient) pair already exists; the uniqueness constraint
	// makes the check-then-create sequence safe under concurrency.
	CreateShare(ctx context.Context, share models.SharedNote) (models.SharedNote, error)

	// GetShare returns the grant for (noteID, recipientID), or
	// [ErrShareNotFound].
	GetShare(ctx context.Context, noteID, recipientID int64) (models.SharedNote, error)
}
