package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vmelnikv/noteshare/internal/adapter"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/models"
)

// noteService fronts the server adapter with the local read cache. Listings
// refresh the cache on success; when the server is unreachable the cached
// snapshot is served instead, together with the transport error so the UI can
// mark the data as possibly stale. Mutations always go to the server.
type noteService struct {
	server adapter.ServerAdapter
	cache  store.NoteCacheRepository
	logger *logger.Logger

	mu     sync.RWMutex
	userID int64
}

func newNoteService(server adapter.ServerAdapter, cache store.NoteCacheRepository, logger *logger.Logger) *noteService {
	return &noteService{server: server, cache: cache, logger: logger}
}

// SetUser scopes the cache to the authenticated user. Must be called before
// any listing method.
func (n *noteService) SetUser(userID int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.userID = userID
}

func (n *noteService) currentUser() int64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.userID
}

func (n *noteService) ListCreated(ctx context.Context, page int) (models.Page[models.Note], error) {
	return n.list(ctx, page, store.OriginCreated, n.server.ListCreated)
}

func (n *noteService) ListShared(ctx context.Context, page int) (models.Page[models.Note], error) {
	return n.list(ctx, page, store.OriginShared, n.server.ListShared)
}

func (n *noteService) list(ctx context.Context, page int, origin string, fetch func(context.Context, int) (models.Page[models.Note], error)) (models.Page[models.Note], error) {
	userID := n.currentUser()

	result, err := fetch(ctx, page)
	if err == nil {
		// Only the first page is mirrored; deeper pages would leave holes in
		// the snapshot.
		if page == 1 {
			if cacheErr := n.cache.ReplaceNotes(ctx, userID, origin, result.Results); cacheErr != nil {
				n.logger.Err(cacheErr).Str("func", "list").Str("origin", origin).Msg("note cache was not refreshed")
			}
		}
		return result, nil
	}

	if !isTransportFailure(err) {
		return models.Page[models.Note]{}, err
	}

	cached, cacheErr := n.cache.ListNotes(ctx, userID, origin)
	if cacheErr != nil || len(cached) == 0 {
		return models.Page[models.Note]{}, err
	}

	if len(cached) > models.PageSize {
		cached = cached[:models.PageSize]
	}
	return models.NewPage(cached, int64(len(cached)), 1), fmt.Errorf("showing cached notes: %w", err)
}

func (n *noteService) Get(ctx context.Context, noteID int64) (models.Note, error) {
	note, err := n.server.GetNote(ctx, noteID)
	if err == nil {
		return note, nil
	}
	if !isTransportFailure(err) {
		return models.Note{}, err
	}

	cached, cacheErr := n.cache.GetNote(ctx, n.currentUser(), noteID)
	if cacheErr != nil {
		return models.Note{}, err
	}
	return cached, nil
}

func (n *noteService) Create(ctx context.Context, input models.NoteInput) (models.Note, error) {
	return n.server.CreateNote(ctx, input)
}

func (n *noteService) Update(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error) {
	return n.server.UpdateNote(ctx, noteID, update)
}

func (n *noteService) Delete(ctx context.Context, noteID int64) error {
	return n.server.DeleteNote(ctx, noteID)
}

func (n *noteService) Share(ctx context.Context, noteID int64, recipientEmail string) (models.SharedNote, error) {
	return n.server.ShareNote(ctx, noteID, recipientEmail)
}

// isTransportFailure distinguishes "the server answered with an error" from
// "the server could not be reached". Only the latter may fall back to the
// cache: an answered error must reach the user as-is.
func isTransportFailure(err error) bool {
	for _, sentinel := range []error{
		adapter.ErrBadRequest,
		adapter.ErrUnauthorized,
		adapter.ErrForbidden,
		adapter.ErrNotFound,
		adapter.ErrConflict,
		adapter.ErrInternalServerError,
		adapter.ErrBadGateway,
	} {
		if errors.Is(err, sentinel) {
			return false
		}
	}
	return true
}
