package models

import (
	"time"

	"github.com/google/uuid"
)

// CreatedResponse is returned by endpoints that create an entity.
type CreatedResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatedPostResponse is returned by POST /posts and carries the owner
// resolved from the caller's token.
type CreatedPostResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageResponse is a confirmation body for mutations without a payload.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// StatusResponse is the liveness and reset body of the users and posts
// services.
type StatusResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response. Details carries
// per-field reasons for validation failures.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
