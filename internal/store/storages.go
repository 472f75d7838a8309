package store

import (
	"context"
	"fmt"

	"github.com/vmelnikv/noteshare/internal/config"
	"github.com/vmelnikv/noteshare/internal/logger"
)

// Storages aggregates all server-side repositories behind their interfaces.
type Storages struct {
	UserRepository  UserRepository
	NoteRepository  NoteRepository
	ShareRepository ShareRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations, and
// wires all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		NoteRepository:  NewNoteRepository(db, log),
		ShareRepository: NewShareRepository(db, log),
	}, nil
}
