package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/models"
)

// shareService is the concrete implementation of [ShareService].
type shareService struct {
	noteRepository  store.NoteRepository
	userRepository  store.UserRepository
	shareRepository store.ShareRepository
	notifier        Notifier
	logger          *logger.Logger
}

// NewShareService constructs a [ShareService].
func NewShareService(
	noteRepository store.NoteRepository,
	userRepository store.UserRepository,
	shareRepository store.ShareRepository,
	notifier Notifier,
	logger *logger.Logger,
) ShareService {
	return &shareService{
		noteRepository:  noteRepository,
		userRepository:  userRepository,
		shareRepository: shareRepository,
		notifier:        notifier,
		logger:          logger,
	}
}

// Share grants the user identified by recipientEmail read access to the
// owner's note.
//
// The checks run in a fixed order so each failure mode maps to a stable
// error:
//  1. an empty email is [ErrInvalidDataProvided]
//  2. a note the owner does not own is [store.ErrNoteNotFound]
//  3. an unknown recipient email is [store.ErrNoUserWasFound]
//  4. sharing with oneself is [ErrSelfShare]
//  5. an existing grant for the same pair is [store.ErrDuplicateShare]
//
// The insert's uniqueness constraint settles concurrent duplicates: two
// racing requests both pass the checks, but only one insert succeeds.
func (s *shareService) Share(ctx context.Context, ownerID, noteID int64, recipientEmail string) (models.SharedNote, error) {
	log := logger.FromContext(ctx)

	if recipientEmail == "" {
		log.Error().Int64("note_id", noteID).Msg("empty recipient email provided")
		return models.SharedNote{}, ErrInvalidDataProvided
	}

	if _, err := s.noteRepository.GetNoteOwned(ctx, noteID, ownerID); err != nil {
		return models.SharedNote{}, err
	}

	recipient, err := s.userRepository.FindUserByEmail(ctx, recipientEmail)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("recipient lookup by email failed")
		return models.SharedNote{}, err
	}

	if recipient.UserID == ownerID {
		return models.SharedNote{}, ErrSelfShare
	}

	share, err := s.shareRepository.CreateShare(ctx, models.SharedNote{
		NoteID:      noteID,
		RecipientID: recipient.UserID,
	})
	if err != nil {
		log.Err(err).
			Int64("note_id", noteID).
			Int64("recipient_id", recipient.UserID).
			Msg("share creation ended with error")
		return models.SharedNote{}, fmt.Errorf("share creation ended with error: %w", err)
	}

	s.notifier.Emit(models.NoteEvent{
		Kind:        models.EventNoteShared,
		NoteID:      noteID,
		OwnerID:     ownerID,
		RecipientID: recipient.UserID,
		OccurredAt:  time.Now(),
	})

	return share, nil
}
