package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/handler"
	"github.com/MKhiriev/go-travel-board/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is cancelled or the listener fails.
func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.Shutdown()
	err := <-errCh
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
