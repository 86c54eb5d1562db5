package service

import (
	"context"

	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
)

// UserService owns accounts and their bearer tokens.
type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	IssueToken(ctx context.Context, req models.AuthRequest) (models.Token, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) error
	TokenValidator
}

// TokenValidator resolves a bearer token into the identity of its owner.
//
// The users service answers from its own table; routes and posts ask the
// users service over HTTP. Both return [ErrTokenMissing] for an empty token,
// [ErrTokenInvalid] or [ErrTokenIsExpired] for a rejected one. The remote
// implementation returns [ErrUpstream] for any other failure.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (models.Identity, error)
}

// RouteService manages flight routes.
type RouteService interface {
	CreateRoute(ctx context.Context, req models.CreateRouteRequest) (models.Route, error)
	ListRoutes(ctx context.Context, flightID *string) ([]models.Route, error)
	GetRoute(ctx context.Context, id uuid.UUID) (models.Route, error)
	DeleteRoute(ctx context.Context, id uuid.UUID) error
}

// PostService manages luggage-space offers. Every method runs on behalf of
// an authenticated caller.
type PostService interface {
	CreatePost(ctx context.Context, ownerID uuid.UUID, req models.CreatePostRequest) (models.Post, error)
	ListPosts(ctx context.Context, callerID uuid.UUID, query models.PostQuery) ([]models.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (models.Post, error)
	DeletePost(ctx context.Context, id, callerID uuid.UUID) error
}

// ResetService wipes the table of one service.
type ResetService interface {
	Reset(ctx context.Context) (int64, error)
}
