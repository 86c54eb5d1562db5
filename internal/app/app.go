package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-board/internal/adapter"
	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/handler"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/server"
	"github.com/MKhiriev/go-travel-board/internal/service"
	"github.com/MKhiriev/go-travel-board/internal/store"
	"github.com/MKhiriev/go-travel-board/migrations"
	"github.com/MKhiriev/go-travel-board/models"
)

// Run starts the service svc with command-line args and blocks until it is
// stopped. Returned errors are fatal for the process.
func Run(ctx context.Context, svc config.Service, args []string, info models.AppBuildInfo) error {
	log := logger.NewLogger(svc.Role())
	log.Info().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg("starting")

	cfg, err := config.GetStructuredConfig(svc, args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	for _, warning := range startupWarnings(svc, cfg.App) {
		log.Warn().Msg(warning)
	}

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if !cfg.App.SkipMigrations {
		if err = migrations.Migrate(db.DB, svc.String()); err != nil {
			return err
		}
		log.Info().Msg("migrations applied")
	}

	var usersAdapter adapter.UsersAdapter
	if cfg.NeedsUsersAdapter(svc) {
		usersAdapter, err = adapter.NewUsersHTTPAdapter(cfg.Adapter, log)
		if err != nil {
			return fmt.Errorf("error creating users adapter: %w", err)
		}
	}

	services := newServices(svc, *cfg, store.NewRepositories(db, log), usersAdapter, log)

	handlers, err := handler.NewHandlers(services, svc, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func newServices(svc config.Service, cfg config.StructuredConfig, repos *store.Repositories, usersAdapter adapter.UsersAdapter, log *logger.Logger) *service.Services {
	switch svc {
	case config.ServiceRoutes:
		return service.NewRoutesServices(repos, usersAdapter, log)
	case config.ServicePosts:
		return service.NewPostsServices(repos, usersAdapter, log)
	default:
		return service.NewUsersServices(repos, cfg, log)
	}
}

// startupWarnings lists the enabled compatibility switches that weaken
// authentication.
func startupWarnings(svc config.Service, app config.App) []string {
	var warnings []string

	if svc == config.ServiceRoutes && app.RoutesAuthMode == config.RoutesAuthPresence {
		warnings = append(warnings, "routes accept any Authorization header without validating the token")
	}
	if svc == config.ServiceUsers && app.AllowAnonymousUserUpdate {
		warnings = append(warnings, "PATCH /users/{id} is open to anonymous callers")
	}
	if app.ResetEnabled && app.ResetSignKey == "" {
		warnings = append(warnings, "reset endpoint is enabled without a reset token")
	}

	return warnings
}
