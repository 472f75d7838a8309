package store

import (
	"context"

	"github.com/vmelnikv/noteshare/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=mocks/client_store_mocks.go -package=mocks

// Note listing origins stored alongside cached notes, matching the two
// server-side listings.
const (
	OriginCreated = "created"
	OriginShared  = "shared"
)

// NoteCacheRepository is the local read cache of notes fetched from the
// server. The cache is a plain mirror: each refresh replaces the previous
// snapshot for the given user and origin.
type NoteCacheRepository interface {
	// ReplaceNotes atomically swaps the cached snapshot for (userID, origin)
	// with the provided notes.
	ReplaceNotes(ctx context.Context, userID int64, origin string, notes []models.Note) error

	// ListNotes returns the cached snapshot for (userID, origin), newest
	// first.
	ListNotes(ctx context.Context, userID int64, origin string) ([]models.Note, error)

	// GetNote returns a single cached note, or [ErrNoteNotFound] when it is
	// not in the cache.
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
}

// SessionRepository persists the authenticated session between client runs
// so the user does not have to log in on every start.
type SessionRepository interface {
	// SaveSession stores the session, replacing any previous one.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the stored session, or [ErrNoSessionFound] when
	// nobody is logged in.
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the stored session.
	DeleteSession(ctx context.Context) error
}
