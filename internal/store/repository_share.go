package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/models"
)

// shareRepository is the PostgreSQL-backed implementation of
// [ShareRepository], operating on the "shared_notes" table.
type shareRepository struct {
	*DB
	logger *logger.Logger
}

// NewShareRepository constructs a [ShareRepository] backed by the provided
// database connection and logger.
func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	return &shareRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateShare inserts a new grant and returns it with ShareID and SharedAt
// populated.
//
// The (note_id, recipient_id) uniqueness constraint is the authoritative
// duplicate check: a concurrent insert for the same pair fails here with
// unique_violation regardless of what any pre-check observed, and is
// surfaced as [ErrDuplicateShare].
func (s *shareRepository) CreateShare(ctx context.Context, share models.SharedNote) (models.SharedNote, error) {
	log := logger.FromContext(ctx)

	row := s.DB.QueryRowContext(ctx, createShare, share.NoteID, share.RecipientID)

	var created models.SharedNote
	if err := row.Scan(&created.ShareID, &created.NoteID, &created.RecipientID, &created.SharedAt); err != nil {
		log.Err(err).
			Str("func", "shareRepository.CreateShare").
			Int64("note_id", share.NoteID).
			Int64("recipient_id", share.RecipientID).
			Msg("failed to insert share grant")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.SharedNote{}, ErrDuplicateShare
		case "":
			return models.SharedNote{}, err
		default:
			return models.SharedNote{}, fmt.Errorf("%w: %w", ErrExecutingStatement, s.wrapDriverError(err))
		}
	}

	return created, nil
}

// GetShare retrieves the grant for (noteID, recipientID), or
// [ErrShareNotFound] when no grant exists.
func (s *shareRepository) GetShare(ctx context.Context, noteID, recipientID int64) (models.SharedNote, error) {
	log := logger.FromContext(ctx)

	var share models.SharedNote
	row := s.DB.QueryRowContext(ctx, getShare, noteID, recipientID)

	if err := row.Scan(&share.ShareID, &share.NoteID, &share.RecipientID, &share.SharedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SharedNote{}, ErrShareNotFound
		}

		log.Err(err).
			Str("func", "shareRepository.GetShare").
			Int64("note_id", noteID).
			Int64("recipient_id", recipientID).
			Msg("failed to scan share row")
		return models.SharedNote{}, fmt.Errorf("%w: %w", ErrScanningRow, s.wrapDriverError(err))
	}

	return share, nil
}
