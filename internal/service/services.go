package service

import (
	"github.com/MKhiriev/go-travel-board/internal/adapter"
	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/store"
	"github.com/MKhiriev/go-travel-board/internal/validators"
)

// Services bundles what the handlers of one binary need. Fields that the
// running service does not use stay nil.
type Services struct {
	UserService    UserService
	RouteService   RouteService
	PostService    PostService
	TokenValidator TokenValidator
	ResetService   ResetService
}

func NewUsersServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	userService := NewUserService(repos.Users, validators.NewRequestValidator(), cfg.App, logger)

	return &Services{
		UserService:    userService,
		TokenValidator: userService,
		ResetService:   NewResetService(repos.Users, config.ServiceUsers.String()),
	}
}

// NewRoutesServices wires the routes service. usersAdapter may be nil when
// routes run in presence auth mode.
func NewRoutesServices(repos *store.Repositories, usersAdapter adapter.UsersAdapter, logger *logger.Logger) *Services {
	services := &Services{
		RouteService: NewRouteService(repos.Routes, validators.NewRequestValidator(), logger),
		ResetService: NewResetService(repos.Routes, config.ServiceRoutes.String()),
	}
	if usersAdapter != nil {
		services.TokenValidator = NewRemoteTokenValidator(usersAdapter)
	}
	return services
}

func NewPostsServices(repos *store.Repositories, usersAdapter adapter.UsersAdapter, logger *logger.Logger) *Services {
	return &Services{
		PostService:    NewPostService(repos.Posts, validators.NewRequestValidator(), logger),
		TokenValidator: NewRemoteTokenValidator(usersAdapter),
		ResetService:   NewResetService(repos.Posts, config.ServicePosts.String()),
	}
}
