package handler

import (
	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/handler/http"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, svc config.Service, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, svc, cfg.App, logger),
	}, nil
}
