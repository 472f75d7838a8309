// Package adapter provides transport-layer abstractions for communicating
// with the noteshare server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/vmelnikv/noteshare/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the noteshare
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login, and manually when restoring a persisted
	// session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account with the provided credentials. On success
	// it stores the returned bearer token via SetToken and returns the
	// server-side user record. Returns [ErrConflict] (wrapped) if the
	// username or e-mail is already taken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with the server. On success it stores the returned
	// bearer token via SetToken and returns the server-side user record.
	// Returns [ErrUnauthorized] (wrapped) on bad credentials.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateNote creates a new note owned by the authenticated user and
	// returns the stored note with its server-assigned identifier and
	// timestamp.
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)

	// GetNote fetches a single note the authenticated user can read, either
	// as its owner or as a share recipient. Returns [ErrNotFound] (wrapped)
	// when the note does not exist or is not visible to the user.
	GetNote(ctx context.Context, noteID int64) (models.Note, error)

	// UpdateNote applies a partial update to a note owned by the
	// authenticated user and returns the updated note. Returns [ErrNotFound]
	// (wrapped) when the note does not exist or belongs to someone else.
	UpdateNote(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error)

	// DeleteNote deletes a note owned by the authenticated user together
	// with its share grants. Returns [ErrNotFound] (wrapped) when the note
	// does not exist or belongs to someone else.
	DeleteNote(ctx context.Context, noteID int64) error

	// ListCreated fetches one page of notes owned by the authenticated user,
	// newest first. Pages are numbered from 1. Returns [ErrNotFound]
	// (wrapped) for a page past the end of the listing.
	ListCreated(ctx context.Context, page int) (models.Page[models.Note], error)

	// ListShared fetches one page of notes shared with the authenticated
	// user, newest first. Pages are numbered from 1. Returns [ErrNotFound]
	// (wrapped) for a page past the end of the listing.
	ListShared(ctx context.Context, page int) (models.Page[models.Note], error)

	// ShareNote grants read access to an owned note to the user registered
	// under recipientEmail. Returns [ErrNotFound] (wrapped) when the note is
	// not owned or the recipient does not exist, [ErrBadRequest] (wrapped)
	// on a self-share, and [ErrConflict] (wrapped) on a duplicate grant.
	ShareNote(ctx context.Context, noteID int64, recipientEmail string) (models.SharedNote, error)
}
