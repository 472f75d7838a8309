package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/models"
)

// fakeServerAdapter is a function-field test double for adapter.ServerAdapter.
type fakeServerAdapter struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createNoteFn  func(ctx context.Context, input models.NoteInput) (models.Note, error)
	getNoteFn     func(ctx context.Context, noteID int64) (models.Note, error)
	updateNoteFn  func(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error)
	deleteNoteFn  func(ctx context.Context, noteID int64) error
	listCreatedFn func(ctx context.Context, page int) (models.Page[models.Note], error)
	listSharedFn  func(ctx context.Context, page int) (models.Page[models.Note], error)
	shareNoteFn   func(ctx context.Context, noteID int64, email string) (models.SharedNote, error)

	mu    sync.Mutex
	token string
}

func (f *fakeServerAdapter) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeServerAdapter) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return f.registerFn(ctx, user)
}

func (f *fakeServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return f.loginFn(ctx, user)
}

func (f *fakeServerAdapter) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	return f.createNoteFn(ctx, input)
}

func (f *fakeServerAdapter) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	return f.getNoteFn(ctx, noteID)
}

func (f *fakeServerAdapter) UpdateNote(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error) {
	return f.updateNoteFn(ctx, noteID, update)
}

func (f *fakeServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	return f.deleteNoteFn(ctx, noteID)
}

func (f *fakeServerAdapter) ListCreated(ctx context.Context, page int) (models.Page[models.Note], error) {
	return f.listCreatedFn(ctx, page)
}

func (f *fakeServerAdapter) ListShared(ctx context.Context, page int) (models.Page[models.Note], error) {
	return f.listSharedFn(ctx, page)
}

func (f *fakeServerAdapter) ShareNote(ctx context.Context, noteID int64, email string) (models.SharedNote, error) {
	return f.shareNoteFn(ctx, noteID, email)
}

// fakeNoteCache is an in-memory store.NoteCacheRepository.
type fakeNoteCache struct {
	mu        sync.Mutex
	snapshots map[string][]models.Note
	replaces  int
}

func newFakeNoteCache() *fakeNoteCache {
	return &fakeNoteCache{snapshots: map[string][]models.Note{}}
}

func (f *fakeNoteCache) key(userID int64, origin string) string {
	return fmt.Sprintf("%s/%d", origin, userID)
}

func (f *fakeNoteCache) ReplaceNotes(_ context.Context, userID int64, origin string, notes []models.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshots[f.key(userID, origin)] = append([]models.Note(nil), notes...)
	f.replaces++
	return nil
}

func (f *fakeNoteCache) ListNotes(_ context.Context, userID int64, origin string) ([]models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Note(nil), f.snapshots[f.key(userID, origin)]...), nil
}

func (f *fakeNoteCache) GetNote(_ context.Context, userID, noteID int64) (models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, notes := range f.snapshots {
		for _, note := range notes {
			if note.NoteID == noteID {
				return note, nil
			}
		}
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (f *fakeNoteCache) replaceCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.replaces
}

// fakeSessions is an in-memory store.SessionRepository.
type fakeSessions struct {
	mu      sync.Mutex
	session *models.Session
	saveErr error
}

func (f *fakeSessions) SaveSession(_ context.Context, session models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.session = &session
	return nil
}

func (f *fakeSessions) GetSession(_ context.Context) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return models.Session{}, store.ErrNoSessionFound
	}
	return *f.session, nil
}

func (f *fakeSessions) DeleteSession(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return store.ErrNoSessionFound
	}
	f.session = nil
	return nil
}

var errConnectionRefused = errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")
