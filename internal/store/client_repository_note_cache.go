package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/models"
)

type noteCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteCacheRepository constructs a [NoteCacheRepository] backed by the
// local SQLite cache.
func NewNoteCacheRepository(db *DB, logger *logger.Logger) NoteCacheRepository {
	return &noteCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceNotes swaps the cached snapshot for (userID, origin) inside one
// transaction so readers never observe a half-refreshed cache.
func (c *noteCacheRepository) ReplaceNotes(ctx context.Context, userID int64, origin string, notes []models.Note) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteCacheRepository.ReplaceNotes").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteCachedNotes, userID, origin); err != nil {
		log.Err(err).
			Str("func", "noteCacheRepository.ReplaceNotes").
			Int64("user_id", userID).
			Str("origin", origin).
			Msg("failed to clear cached snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, note := range notes {
		if _, err = tx.ExecContext(ctx, insertCachedNote,
			note.NoteID, userID, origin, note.Title, note.Content, note.CreatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "noteCacheRepository.ReplaceNotes").
				Int64("note_id", note.NoteID).
				Msg("failed to insert cached note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// ListNotes returns the cached snapshot for (userID, origin), newest first.
func (c *noteCacheRepository) ListNotes(ctx context.Context, userID int64, origin string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listCachedNotes, userID, origin)
	if err != nil {
		log.Err(err).
			Str("func", "noteCacheRepository.ListNotes").
			Int64("user_id", userID).
			Msg("failed to query cached notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var note models.Note
		if scanErr := rows.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteCacheRepository.ListNotes").
				Msg("failed to scan cached note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// GetNote returns one cached note regardless of origin.
func (c *noteCacheRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := c.DB.QueryRowContext(ctx, getCachedNote, userID, noteID)

	if err := row.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "noteCacheRepository.GetNote").
			Int64("note_id", noteID).
			Msg("failed to scan cached note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}
