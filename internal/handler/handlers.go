package handler

import (
	"github.com/vmelnikv/noteshare/internal/config"
	"github.com/vmelnikv/noteshare/internal/handler/http"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/metrics"
	"github.com/vmelnikv/noteshare/internal/service"
)

// Handlers groups the transport handlers of the server. Only HTTP is served;
// the struct keeps the door open for additional transports.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers initialises the transport handlers from the server
// configuration. An empty HTTP address is a fatal misconfiguration.
func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, logger),
	}, nil
}
