package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/models"
)

func newTestClientDB(t *testing.T) *DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if _, err = conn.Exec(clientSchema); err != nil {
		t.Fatalf("failed to apply client schema: %v", err)
	}

	return &DB{DB: conn, logger: logger.Nop()}
}

func TestNoteCache_ReplaceAndList(t *testing.T) {
	db := newTestClientDB(t)
	repo := NewNoteCacheRepository(db, logger.Nop())
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	first := []models.Note{
		{NoteID: 1, UserID: 1, Title: "old", Content: "a", CreatedAt: now.Add(-time.Hour)},
		{NoteID: 2, UserID: 1, Title: "new", Content: "b", CreatedAt: now},
	}

	if err := repo.ReplaceNotes(ctx, 1, OriginCreated, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notes, err := repo.ListNotes(ctx, 1, OriginCreated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 cached notes, got %d", len(notes))
	}
	if notes[0].NoteID != 2 {
		t.Errorf("expected newest note first, got NoteID=%d", notes[0].NoteID)
	}

	// a refresh replaces the snapshot entirely
	second := []models.Note{
		{NoteID: 3, UserID: 1, Title: "only", Content: "c", CreatedAt: now},
	}
	if err = repo.ReplaceNotes(ctx, 1, OriginCreated, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notes, err = repo.ListNotes(ctx, 1, OriginCreated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 1 || notes[0].NoteID != 3 {
		t.Errorf("expected snapshot replaced with note 3, got %+v", notes)
	}
}

func TestNoteCache_OriginsAreIsolated(t *testing.T) {
	db := newTestClientDB(t)
	repo := NewNoteCacheRepository(db, logger.Nop())
	ctx := context.Background()

	now := time.Now().UTC()
	if err := repo.ReplaceNotes(ctx, 1, OriginCreated, []models.Note{
		{NoteID: 1, UserID: 1, Title: "mine", CreatedAt: now},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.ReplaceNotes(ctx, 1, OriginShared, []models.Note{
		{NoteID: 2, UserID: 2, Title: "theirs", CreatedAt: now},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, err := repo.ListNotes(ctx, 1, OriginCreated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 || created[0].NoteID != 1 {
		t.Errorf("created snapshot polluted: %+v", created)
	}

	shared, err := repo.ListNotes(ctx, 1, OriginShared)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shared) != 1 || shared[0].NoteID != 2 {
		t.Errorf("shared snapshot polluted: %+v", shared)
	}
}

func TestNoteCache_GetNote(t *testing.T) {
	db := newTestClientDB(t)
	repo := NewNoteCacheRepository(db, logger.Nop())
	ctx := context.Background()

	if err := repo.ReplaceNotes(ctx, 1, OriginCreated, []models.Note{
		{NoteID: 7, UserID: 1, Title: "keep", Content: "body", CreatedAt: time.Now().UTC()},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	note, err := repo.GetNote(ctx, 1, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.Title != "keep" {
		t.Errorf("expected title keep, got %s", note.Title)
	}

	_, err = repo.GetNote(ctx, 1, 404)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	db := newTestClientDB(t)
	repo := NewSessionRepository(db, logger.Nop())
	ctx := context.Background()

	_, err := repo.GetSession(ctx)
	if !errors.Is(err, ErrNoSessionFound) {
		t.Fatalf("expected ErrNoSessionFound, got %v", err)
	}

	session := models.Session{
		UserID:    1,
		Username:  "alice",
		Token:     "signed.jwt.token",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err = repo.SaveSession(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.GetSession(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Username != "alice" || stored.Token != session.Token {
		t.Errorf("unexpected session returned: %+v", stored)
	}

	// saving again overwrites the single row
	session.Username = "bob"
	if err = repo.SaveSession(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, err = repo.GetSession(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Username != "bob" {
		t.Errorf("expected session overwritten, got %+v", stored)
	}

	if err = repo.DeleteSession(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = repo.GetSession(ctx)
	if !errors.Is(err, ErrNoSessionFound) {
		t.Fatalf("expected ErrNoSessionFound after delete, got %v", err)
	}
}
