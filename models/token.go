package models

import (
	"time"

	"github.com/google/uuid"
)

// Token is an opaque session credential issued by POST /users/auth.
type Token struct {
	// UserID is the owner of the token.
	UserID uuid.UUID `json:"id"`

	// Value is the hex-encoded random bearer value.
	Value string `json:"token"`

	// ExpireAt is the first instant at which Value is no longer accepted.
	ExpireAt time.Time `json:"expireAt"`
}
