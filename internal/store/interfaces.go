// Package store implements the PostgreSQL persistence of the users, routes
// and posts services on top of database/sql and the pgx driver.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
)

// Purger removes every row a service owns.
type Purger interface {
	Purge(ctx context.Context) (int64, error)
}

// UserRepository persists accounts and their single active bearer token.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByToken(ctx context.Context, token string) (models.User, error)
	SaveToken(ctx context.Context, userID uuid.UUID, token string, expireAt time.Time) error
	UpdateUser(ctx context.Context, id uuid.UUID, update models.UpdateUserRequest) error
	Purger
}

// RouteRepository persists flight routes.
type RouteRepository interface {
	CreateRoute(ctx context.Context, route models.Route) (models.Route, error)
	ListRoutes(ctx context.Context, flightID *string) ([]models.Route, error)
	GetRoute(ctx context.Context, id uuid.UUID) (models.Route, error)
	DeleteRoute(ctx context.Context, id uuid.UUID) error
	Purger
}

// PostRepository persists luggage-space offers.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (models.Post, error)
	DeletePost(ctx context.Context, id, ownerID uuid.UUID) error
	Purger
}
