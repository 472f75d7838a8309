package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmelnikv/noteshare/internal/service"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/models"
)

// authedRouter wires the full router with an auth mock that accepts the
// "valid" token as user 1, so tests exercise routing, middleware, and the
// handler together.
func authedRouter(t *testing.T, notes service.NoteService, shares service.ShareService) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: 1}, nil
		},
	}

	return newTestHandler(t, auth, notes, shares).Init()
}

func doAuthed(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer valid")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// create
// ─────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	notes := &mockNoteService{
		createFn: func(_ context.Context, ownerID int64, input models.NoteInput) (models.Note, error) {
			assert.Equal(t, int64(1), ownerID)
			return models.Note{NoteID: 7, UserID: ownerID, Title: input.Title, Content: input.Content}, nil
		},
	}

	router := authedRouter(t, notes, nil)
	rec := doAuthed(t, router, http.MethodPost, "/api/notes", `{"title":"Groceries","content":"milk"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(7), created.NoteID)
	assert.Equal(t, "Groceries", created.Title)
}

func TestCreateNote_ValidationError(t *testing.T) {
	notes := &mockNoteService{
		createFn: func(_ context.Context, _ int64, _ models.NoteInput) (models.Note, error) {
			return models.Note{}, service.ErrInvalidDataProvided
		},
	}

	router := authedRouter(t, notes, nil)
	rec := doAuthed(t, router, http.MethodPost, "/api/notes", `{"title":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title and content are required")
}

func TestCreateNote_Unauthorized(t *testing.T) {
	router := authedRouter(t, &mockNoteService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"title":"t","content":"c"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// get
// ─────────────────────────────────────────────

func TestGetNote_Success(t *testing.T) {
	notes := &mockNoteService{
		getFn: func(_ context.Context, requesterID, noteID int64) (models.Note, error) {
			assert.Equal(t, int64(1), requesterID)
			assert.Equal(t, int64(7), noteID)
			return models.Note{NoteID: 7, UserID: 2, Title: "shared with me"}, nil
		},
	}

	router := authedRouter(t, notes, nil)
	rec := doAuthed(t, router, http.MethodGet, "/api/notes/7", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, "shared with me", note.Title)
}

// TestGetNote_NotFound verifies the uniform not-found response: the handler
// cannot tell a nonexistent note from a forbidden one, and neither can the
// client.
func TestGetNote_NotFound(t *testing.T) {
	notes := &mockNoteService{
		getFn: func(_ context.Context, _, _ int64) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}

	router := authedRouter(t, notes, nil)
	rec := doAuthed(t, router, http.MethodGet, "/api/notes/7", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgNoteNotFound)
}

func TestGetNote_NonNumericID(t *testing.T) {
	router := authedRouter(t, &mockNoteService{}, nil)
	rec := doAuthed(t, router, http.MethodGet, "/api/notes/abc", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// update
// ─────────────────────────────────────────────

func TestUpdateNote_PatchPartial(t *testing.T) {
	notes := &mockNoteService{
		updateFn: func(_ context.Context, requesterID, noteID int64, update models.NoteUpdate) (models.Note, error) {
			require.NotNil(t, update.Title)
			assert.Nil(t, update.Content)
			return models.Note{NoteID: noteID, UserID: requesterID, Title: *update.Title, Content: "old"}, nil
		},
	}

	router := authedRouter(t, notes, nil)
	rec := doAuthed(t, router, http.MethodPatch, "/api/notes/7", `{"title":"renamed"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "old", updated.Content)
}

// TestUpdateNote_PutRequiresBothFields verifies that a PUT missing a field is
// rejected before the service is called.
func TestUpdateNote_PutRequiresBothFields(t *testing.T) {
	router := authedRouter(t, &mockNoteService{}, nil)
	rec := doAuthed(t, router, http.MethodPut, "/api/notes/7", `{"title":"only title"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title and content are required")
}

func TestUpdateNote_NotFound(t *testing.T) {
	notes := &mockNoteService{
		updateFn: func(_ context.Context, _, _ int64, _ models.NoteUpdate) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}

	router := authedRouter(t, notes, nil)
	rec := doAuthed(t, router, http.MethodPatch, "/api/notes/7", `{"title":"renamed"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// delete
// ─────────────────────────────────────────────

func TestDeleteNote_Success(t *testing.T) {
	notes := &mockNoteService{
		deleteFn: func(_ context.Context, requesterID, noteID int64) error {
			assert.Equal(t, int64(1), requesterID)
			assert.Equal(t, int64(7), noteID)
			return nil
		},
	}

	router := authedRouter(t, notes, nil)
	rec := doAuthed(t, router, http.MethodDelete, "/api/notes/7", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteNote_NotFound(t *testing.T) {
	notes := &mockNoteService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrNoteNotFound
		},
	}

	router := authedRouter(t, notes, nil)
	rec := doAuthed(t, router, http.MethodDelete, "/api/notes/7", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// listings
// ─────────────────────────────────────────────

func TestListCreated_DefaultsToFirstPage(t *testing.T) {
	notes := &mockNoteService{
		listOwnedFn: func(_ context.Context, ownerID int64, page int) (models.Page[models.Note], error) {
			assert.Equal(t, 1, page)
			return models.NewPage([]models.Note{{NoteID: 1, UserID: ownerID}}, 1, page), nil
		},
	}

	router := authedRouter(t, notes, nil)
	rec := doAuthed(t, router, http.MethodGet, "/api/notes/created", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var page models.Page[models.Note]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Count)
	require.Len(t, page.Results, 1)
}

func TestListShared_PageParam(t *testing.T) {
	notes := &mockNoteService{
		listSharedFn: func(_ context.Context, _ int64, page int) (models.Page[models.Note], error) {
			assert.Equal(t, 3, page)
			return models.Page[models.Note]{Results: []models.Note{}}, nil
		},
	}

	router := authedRouter(t, notes, nil)
	rec := doAuthed(t, router, http.MethodGet, "/api/notes/shared?page=3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListCreated_InvalidPage(t *testing.T) {
	router := authedRouter(t, &mockNoteService{}, nil)
	rec := doAuthed(t, router, http.MethodGet, "/api/notes/created?page=abc", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidPage)
}

func TestListCreated_PagePastEnd(t *testing.T) {
	notes := &mockNoteService{
		listOwnedFn: func(_ context.Context, _ int64, _ int) (models.Page[models.Note], error) {
			return models.Page[models.Note]{}, service.ErrPageNotFound
		},
	}

	router := authedRouter(t, notes, nil)
	rec := doAuthed(t, router, http.MethodGet, "/api/notes/created?page=99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
