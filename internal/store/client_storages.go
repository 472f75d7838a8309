package store

import (
	"context"
	"fmt"

	"github.com/vmelnikv/noteshare/internal/config"
	"github.com/vmelnikv/noteshare/internal/logger"
)

// ClientStorages groups the client-side repositories backed by the local
// SQLite cache.
type ClientStorages struct {
	// NoteCacheRepository mirrors server-side note listings for offline
	// viewing.
	NoteCacheRepository NoteCacheRepository
	// SessionRepository persists the authenticated session between runs.
	SessionRepository SessionRepository
}

// NewClientStorages opens the local cache database, applies the client
// schema, and wires the client repositories over the shared connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error opening local cache: %w", err)
	}

	return &ClientStorages{
		NoteCacheRepository: NewNoteCacheRepository(db, log),
		SessionRepository:   NewSessionRepository(db, log),
	}, nil
}
