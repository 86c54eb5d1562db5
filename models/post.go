package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is an offer published by a user for a route. RouteID is not checked
// against the routes service.
type Post struct {
	ID        uuid.UUID `json:"id"`
	RouteID   uuid.UUID `json:"routeId"`
	UserID    uuid.UUID `json:"userId"`
	ExpireAt  time.Time `json:"expireAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	RouteID  string `json:"routeId" validate:"required"`
	ExpireAt string `json:"expireAt" validate:"required"`
}

// PostQuery holds the raw query parameters of GET /posts. A nil field means
// the parameter was absent.
type PostQuery struct {
	Expire *string
	Route  *string
	Owner  *string
}

// PostFilter is the parsed, conjunctive form of [PostQuery].
type PostFilter struct {
	// Expired selects posts already expired (true) or still active (false)
	// relative to Now. Nil disables the condition.
	Expired *bool

	// RouteID restricts the result to a single route.
	RouteID *uuid.UUID

	// OwnerID restricts the result to posts of a single user.
	OwnerID *uuid.UUID

	// Now is the reference instant for Expired.
	Now time.Time
}
