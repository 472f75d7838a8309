package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/service"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/internal/utils"
)

// shareRequest is the body of POST /api/notes/{noteID}/share.
type shareRequest struct {
	Email string `json:"email"`
}

func (h *Handler) shareNote(w http.ResponseWriter, r *http.Request) {
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

	var req shareRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	share, err := h.services.ShareService.Share(ctx, userID, noteID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "recipient email is required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoteNotFound):
			http.Error(w, msgNoteNotFound, http.StatusNotFound)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			http.Error(w, msgRecipientNotFound, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrSelfShare):
			http.Error(w, service.ErrSelfShare.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDuplicateShare):
			http.Error(w, store.ErrDuplicateShare.Error(), http.StatusConflict)
			return
		default:
			log.Err(err).Int64("note_id", noteID).Msg("unexpected error occurred during note sharing")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, share, http.StatusCreated)
}
