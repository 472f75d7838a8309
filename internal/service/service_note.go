package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/internal/validators"
	"github.com/vmelnikv/noteshare/models"
)

// noteService is the concrete implementation of [NoteService].
//
// Read access goes through the [AccessResolver]; writes and deletes rely on
// the repository's owner-scoped statements, which match zero rows for a
// foreign note and therefore yield the same not-found outcome as a
// nonexistent one.
type noteService struct {
	noteRepository store.NoteRepository
	resolver       AccessResolver
	notifier       Notifier
	validator      validators.Validator
	logger         *logger.Logger
}

// NewNoteService constructs a [NoteService].
func NewNoteService(noteRepository store.NoteRepository, resolver AccessResolver, notifier Notifier, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		resolver:       resolver,
		notifier:       notifier,
		validator:      validators.NewNoteValidator(),
		logger:         logger,
	}
}

// Create persists a new note owned by ownerID and emits a creation event.
//
// Returns [ErrInvalidDataProvided] when the title or content is empty.
func (n *noteService) Create(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Int64("user_id", ownerID).Msg("invalid note data provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	created, err := n.noteRepository.CreateNote(ctx, models.Note{
		UserID:  ownerID,
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	n.notifier.Emit(models.NoteEvent{
		Kind:       models.EventNoteCreated,
		NoteID:     created.NoteID,
		OwnerID:    ownerID,
		OccurredAt: time.Now(),
	})

	return created, nil
}

// Get returns the note when the requester owns it or holds a read grant, and
// [store.ErrNoteNotFound] otherwise.
func (n *noteService) Get(ctx context.Context, requesterID, noteID int64) (models.Note, error) {
	note, _, err := n.resolver.Resolve(ctx, requesterID, noteID, IntentRead)
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// Update applies the non-nil fields of update to the requester's own note.
//
// An update naming no fields is rejected with [ErrInvalidDataProvided]. A
// nonexistent or foreign note yields [store.ErrNoteNotFound]; read grants do
// not permit updates.
func (n *noteService) Update(ctx context.Context, requesterID, noteID int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Int64("note_id", noteID).Msg("invalid note update provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	updated, err := n.noteRepository.UpdateNote(ctx, noteID, requesterID, update)
	if err != nil {
		return models.Note{}, err
	}

	return updated, nil
}

// Delete removes the requester's own note together with all grants
// referencing it. A nonexistent or foreign note yields
// [store.ErrNoteNotFound]; read grants do not permit deletion.
func (n *noteService) Delete(ctx context.Context, requesterID, noteID int64) error {
	return n.noteRepository.DeleteNote(ctx, noteID, requesterID)
}

// ListOwned returns one page of notes owned by ownerID, newest first.
func (n *noteService) ListOwned(ctx context.Context, ownerID int64, page int) (models.Page[models.Note], error) {
	return n.listPage(ctx, page,
		func() (int64, error) { return n.noteRepository.CountOwned(ctx, ownerID) },
		func(limit, offset uint64) ([]models.Note, error) {
			return n.noteRepository.ListOwned(ctx, ownerID, limit, offset)
		},
	)
}

// ListShared returns one page of notes shared with recipientID, newest first.
func (n *noteService) ListShared(ctx context.Context, recipientID int64, page int) (models.Page[models.Note], error) {
	return n.listPage(ctx, page,
		func() (int64, error) { return n.noteRepository.CountSharedWith(ctx, recipientID) },
		func(limit, offset uint64) ([]models.Note, error) {
			return n.noteRepository.ListSharedWith(ctx, recipientID, limit, offset)
		},
	)
}

// listPage runs the shared count-then-fetch pagination flow. Page numbers
// start at 1; page 1 of an empty set is valid, any later page past the end is
// [ErrPageNotFound].
func (n *noteService) listPage(
	ctx context.Context,
	page int,
	count func() (int64, error),
	list func(limit, offset uint64) ([]models.Note, error),
) (models.Page[models.Note], error) {
	if page < 1 {
		return models.Page[models.Note]{}, ErrPageNotFound
	}

	total, err := count()
	if err != nil {
		return models.Page[models.Note]{}, fmt.Errorf("counting notes failed: %w", err)
	}

	offset := uint64(page-1) * models.PageSize
	if page > 1 && int64(offset) >= total {
		return models.Page[models.Note]{}, ErrPageNotFound
	}

	notes, err := list(models.PageSize, offset)
	if err != nil {
		return models.Page[models.Note]{}, fmt.Errorf("listing notes failed: %w", err)
	}

	return models.NewPage(notes, total, page), nil
}
