package http

import (
	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/service"
)

type Handler struct {
	services *service.Services

	// service is the binary this handler serves; it picks the router and
	// the expected subject of reset tokens.
	service config.Service
	app     config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, svc config.Service, app config.App, logger *logger.Logger) *Handler {
	logger.Info().Str("service", svc.String()).Msg("http handler created")
	return &Handler{
		services: services,
		service:  svc,
		app:      app,
		logger:   logger,
	}
}
