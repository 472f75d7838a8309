package service

import (
	"github.com/vmelnikv/noteshare/internal/config"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/metrics"
	"github.com/vmelnikv/noteshare/internal/store"
)

// Services groups all server-side services passed to the HTTP layer.
type Services struct {
	AuthService  AuthService
	NoteService  NoteService
	ShareService ShareService
}

// NewServices wires the service layer over the repositories. The notifier is
// shared by every service that emits events; starting its dispatch loop is
// the caller's responsibility.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, m *metrics.Metrics, notifier Notifier, logger *logger.Logger) *Services {
	resolver := NewAccessResolver(storages.NoteRepository, storages.ShareRepository, logger)

	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.Auth, m, logger),
		NoteService:  NewNoteService(storages.NoteRepository, resolver, notifier, logger),
		ShareService: NewShareService(storages.NoteRepository, storages.UserRepository, storages.ShareRepository, notifier, logger),
	}
}
