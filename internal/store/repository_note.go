package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD and listing operations against the "notes" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, note_id, etc.).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote persists a new note owned by note.UserID and returns the
// canonical database representation with NoteID and CreatedAt populated.
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := n.DB.QueryRowContext(ctx, createNote, note.UserID, note.Title, note.Content)

	var created models.Note
	if err := row.Scan(&created.NoteID, &created.UserID, &created.Title, &created.Content, &created.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, n.wrapDriverError(err))
	}

	return created, nil
}

// GetNote retrieves a note by ID without an ownership filter. The access
// decision belongs to the caller.
func (n *noteRepository) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	return n.getNote(ctx, getNote, noteID)
}

// GetNoteOwned retrieves a note only when noteID exists and is owned by
// ownerID. A note owned by someone else yields [ErrNoteNotFound], identical
// to a nonexistent note.
func (n *noteRepository) GetNoteOwned(ctx context.Context, noteID, ownerID int64) (models.Note, error) {
	return n.getNote(ctx, getNoteOwned, noteID, ownerID)
}

func (n *noteRepository) getNote(ctx context.Context, query string, args ...any) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := n.DB.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "noteRepository.getNote").
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, n.wrapDriverError(err))
	}

	return note, nil
}

// UpdateNote applies the fields present in update to the note identified by
// (noteID, ownerID) and returns the updated row.
//
// The UPDATE is built dynamically so that absent fields are left untouched.
// Matching zero rows (nonexistent note or foreign owner) yields
// [ErrNoteNotFound].
func (n *noteRepository) UpdateNote(ctx context.Context, noteID, ownerID int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(noteID, ownerID, update)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("note_id", noteID).
			Msg("failed to build update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Note
	row := n.DB.QueryRowContext(ctx, query, args...)

	if err = row.Scan(&updated.NoteID, &updated.UserID, &updated.Title, &updated.Content, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("note_id", noteID).
			Int64("user_id", ownerID).
			Msg("failed to execute update")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, n.wrapDriverError(err))
	}

	return updated, nil
}

// DeleteNote removes the note identified by (noteID, ownerID) and every share
// grant referencing it, in one transaction. The grants go first so a deleted
// note can never leave a dangling grant behind.
func (n *noteRepository) DeleteNote(ctx context.Context, noteID, ownerID int64) error {
	log := logger.FromContext(ctx)

	tx, err := n.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, n.wrapDriverError(err))
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteNoteShares, noteID); err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Msg("failed to delete share grants")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, n.wrapDriverError(err))
	}

	result, err := tx.ExecContext(ctx, deleteNote, noteID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Int64("user_id", ownerID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, n.wrapDriverError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		// nothing deleted: note absent or owned by someone else, so the
		// share cleanup above touched no live grants either
		return ErrNoteNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, n.wrapDriverError(err))
	}

	return nil
}

// ListOwned returns one page of notes owned by ownerID, newest first.
func (n *noteRepository) ListOwned(ctx context.Context, ownerID int64, limit, offset uint64) ([]models.Note, error) {
	query, args, err := buildListOwnedQuery(ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.listNotes(ctx, "noteRepository.ListOwned", query, args)
}

// CountOwned returns the total number of notes owned by ownerID.
func (n *noteRepository) CountOwned(ctx context.Context, ownerID int64) (int64, error) {
	query, args, err := buildCountOwnedQuery(ownerID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.countRows(ctx, "noteRepository.CountOwned", query, args)
}

// ListSharedWith returns one page of notes shared with recipientID, ordered
// by the underlying note's creation time, newest first.
func (n *noteRepository) ListSharedWith(ctx context.Context, recipientID int64, limit, offset uint64) ([]models.Note, error) {
	query, args, err := buildListSharedQuery(recipientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.listNotes(ctx, "noteRepository.ListSharedWith", query, args)
}

// CountSharedWith returns the total number of notes shared with recipientID.
func (n *noteRepository) CountSharedWith(ctx context.Context, recipientID int64) (int64, error) {
	query, args, err := buildCountSharedQuery(recipientID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.countRows(ctx, "noteRepository.CountSharedWith", query, args)
}

func (n *noteRepository) listNotes(ctx context.Context, caller, query string, args []any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, n.wrapDriverError(err))
	}
	defer rows.Close()

	results := make([]models.Note, 0, models.PageSize)

	for rows.Next() {
		var note models.Note

		if scanErr := rows.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (n *noteRepository) countRows(ctx context.Context, caller, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := n.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to scan count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, n.wrapDriverError(err))
	}

	return count, nil
}
