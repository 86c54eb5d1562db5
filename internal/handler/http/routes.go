package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init returns the router of the service the handler was built for.
func (h *Handler) Init() http.Handler {
	switch h.service {
	case config.ServiceRoutes:
		return h.InitRoutes()
	case config.ServicePosts:
		return h.InitPosts()
	default:
		return h.InitUsers()
	}
}

func (h *Handler) newRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}

func (h *Handler) InitUsers() *chi.Mux {
	router := h.newRouter()

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/users/ping", h.ping)
		r.Post("/users", h.createUser)
		r.Post("/users/auth", h.issueToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/me", h.me)
		if !h.app.AllowAnonymousUserUpdate {
			r.Patch("/users/{id}", h.updateUser)
		}
	})

	if h.app.AllowAnonymousUserUpdate {
		router.Patch("/users/{id}", h.updateUser)
	}

	h.mountReset(router, "/users/reset")

	return router
}

func (h *Handler) InitRoutes() *chi.Mux {
	router := h.newRouter()

	router.Get("/routes/ping", h.ping)

	router.Group(func(r chi.Router) {
		if h.app.RoutesAuthMode == config.RoutesAuthPresence {
			r.Use(authPresence)
		} else {
			r.Use(h.auth)
		}

		r.Post("/routes", h.createRoute)
		r.Get("/routes", h.listRoutes)
		r.Get("/routes/{id}", h.getRoute)
		r.Delete("/routes/{id}", h.deleteRoute)
	})

	h.mountReset(router, "/routes/reset")

	return router
}

func (h *Handler) InitPosts() *chi.Mux {
	router := h.newRouter()

	router.Get("/posts/ping", h.ping)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/posts", h.createPost)
		r.Get("/posts", h.listPosts)
		r.Get("/posts/{id}", h.getPost)
		r.Delete("/posts/{id}", h.deletePost)
	})

	h.mountReset(router, "/posts/reset")

	return router
}

// mountReset registers the reset endpoint only when it is enabled, so a
// production deployment answers 404.
func (h *Handler) mountReset(router chi.Router, pattern string) {
	if !h.app.ResetEnabled {
		return
	}
	router.With(h.resetGuard).Post(pattern, h.reset)
}
