package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/models"
)

// sessionRepository persists a single session row in the local SQLite cache.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the local
// SQLite cache.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession stores the session, replacing any previous one.
func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, saveSession,
		session.UserID, session.Username, session.Token, session.CreatedAt,
	); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to persist session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession returns the stored session, or [ErrNoSessionFound].
func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := s.DB.QueryRowContext(ctx, getSession)

	if err := row.Scan(&session.UserID, &session.Username, &session.Token, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionFound
		}

		log.Err(err).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// DeleteSession removes the stored session. Deleting an absent session is not
// an error.
func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, deleteSession); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
