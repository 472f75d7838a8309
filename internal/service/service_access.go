package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/models"
)

// accessResolver is the concrete implementation of [AccessResolver].
//
// Resolution order is fixed: ownership is checked first and grants second,
// and only for read intents. The two lookups keep ownership authoritative: a
// grant can never widen access to write or delete.
type accessResolver struct {
	noteRepository  store.NoteRepository
	shareRepository store.ShareRepository
	logger          *logger.Logger
}

// NewAccessResolver constructs an [AccessResolver] over the note and share
// repositories.
func NewAccessResolver(noteRepository store.NoteRepository, shareRepository store.ShareRepository, logger *logger.Logger) AccessResolver {
	return &accessResolver{
		noteRepository:  noteRepository,
		shareRepository: shareRepository,
		logger:          logger,
	}
}

// Resolve decides whether requesterID may perform intent on noteID.
//
// Owners pass for every intent. For IntentRead a share grant is consulted as
// a fallback. Every denial (nonexistent note, foreign note without a grant,
// write intent on a granted note) returns [store.ErrNoteNotFound], so the
// caller's response never reveals whether the note exists.
func (r *accessResolver) Resolve(ctx context.Context, requesterID, noteID int64, intent Intent) (models.Note, Access, error) {
	log := logger.FromContext(ctx)

	note, err := r.noteRepository.GetNoteOwned(ctx, noteID, requesterID)
	if err == nil {
		return note, AccessOwner, nil
	}
	if !errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, AccessDenied, fmt.Errorf("ownership lookup failed: %w", err)
	}

	if intent != IntentRead {
		return models.Note{}, AccessDenied, store.ErrNoteNotFound
	}

	_, err = r.shareRepository.GetShare(ctx, noteID, requesterID)
	if err != nil {
		if errors.Is(err, store.ErrShareNotFound) {
			return models.Note{}, AccessDenied, store.ErrNoteNotFound
		}
		return models.Note{}, AccessDenied, fmt.Errorf("share lookup failed: %w", err)
	}

	note, err = r.noteRepository.GetNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			// a grant without its note: grants are removed in the same
			// transaction as the note, so this state should be unreachable
			log.Error().
				Str("func", "accessResolver.Resolve").
				Int64("note_id", noteID).
				Int64("recipient_id", requesterID).
				Msg("share grant references a missing note")
			return models.Note{}, AccessDenied, store.ErrNoteNotFound
		}
		return models.Note{}, AccessDenied, fmt.Errorf("note lookup failed: %w", err)
	}

	return note, AccessSharedReader, nil
}
