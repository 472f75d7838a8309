package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/service"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/internal/utils"
	"github.com/vmelnikv/noteshare/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var input models.NoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.NoteService.Create(ctx, userID, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, "title and content are required", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during note creation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		http.Error(w, msgNoteNotFound, http.StatusNotFound)
		return
	}

	note, err := h.services.NoteService.Get(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			http.Error(w, msgNoteNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("note_id", noteID).Msg("unexpected error occurred during note lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// updateNote serves both PUT and PATCH. PUT replaces the note and requires
// both fields; PATCH applies only the fields present in the body.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		http.Error(w, msgNoteNotFound, http.StatusNotFound)
		return
	}

	var update models.NoteUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if r.Method == http.MethodPut && (update.Title == nil || update.Content == nil) {
		http.Error(w, "title and content are required", http.StatusBadRequest)
		return
	}

	updated, err := h.services.NoteService.Update(ctx, userID, noteID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoteNotFound):
			http.Error(w, msgNoteNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("note_id", noteID).Msg("unexpected error occurred during note update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		http.Error(w, msgNoteNotFound, http.StatusNotFound)
		return
	}

	if err = h.services.NoteService.Delete(ctx, userID, noteID); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			http.Error(w, msgNoteNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("note_id", noteID).Msg("unexpected error occurred during note deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCreated(w http.ResponseWriter, r *http.Request) {
	h.listNotes(w, r, h.services.NoteService.ListOwned)
}

func (h *Handler) listShared(w http.ResponseWriter, r *http.Request) {
	h.listNotes(w, r, h.services.NoteService.ListShared)
}

func (h *Handler) listNotes(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, userID int64, page int) (models.Page[models.Note], error),
) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, msgInvalidPage, http.StatusNotFound)
			return
		}
		page = parsed
	}

	result, err := list(ctx, userID, page)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			http.Error(w, msgInvalidPage, http.StatusNotFound)
			return
		}
		log.Err(err).Int("page", page).Msg("unexpected error occurred during note listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// noteIDFromRequest parses the {noteID} URL parameter.
func noteIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "noteID"), 10, 64)
}
