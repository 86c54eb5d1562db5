package models

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus is the verification state of a user account.
type UserStatus string

const (
	// StatusPendingVerification is the database default for accounts that
	// have not been through verification yet.
	StatusPendingVerification UserStatus = "POR_VERIFICAR"

	// StatusNotVerified marks accounts whose verification was rejected.
	StatusNotVerified UserStatus = "NO_VERIFICADO"

	// StatusVerified marks accounts that passed verification.
	StatusVerified UserStatus = "VERIFICADO"
)

// Valid reports whether s is one of the known account statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case StatusPendingVerification, StatusNotVerified, StatusVerified:
		return true
	}
	return false
}

// User represents an account stored by the users service.
// Credential and session fields are never serialised to JSON.
type User struct {
	// ID is the server-assigned account identifier.
	ID uuid.UUID `json:"id"`

	// Username is the unique login name of the account.
	Username string `json:"username"`

	// Email is the unique contact address of the account.
	Email string `json:"email"`

	// PasswordHash is the hex-encoded KDF output of the password and Salt.
	PasswordHash string `json:"-"`

	// Salt is the per-user random salt mixed into PasswordHash.
	Salt string `json:"-"`

	// Token is the single active bearer token, nil when no session exists.
	Token *string `json:"-"`

	// ExpireAt is the instant Token stops being valid. It is set if and only
	// if Token is set.
	ExpireAt *time.Time `json:"-"`

	// FullName, DNI and PhoneNumber are optional profile fields.
	FullName    *string `json:"fullName"`
	DNI         *string `json:"dni"`
	PhoneNumber *string `json:"phoneNumber"`

	// Status is the verification state of the account.
	Status UserStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasActiveToken reports whether the user holds a token that is still valid
// at now. A token whose expiry equals now is already expired.
func (u User) HasActiveToken(now time.Time) bool {
	return u.Token != nil && u.ExpireAt != nil && now.Before(*u.ExpireAt)
}

// Identity converts the account into the public profile exposed by
// GET /users/me.
func (u User) Identity() Identity {
	return Identity{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		DNI:         u.DNI,
		PhoneNumber: u.PhoneNumber,
		Status:      u.Status,
	}
}

// Identity is the public profile of an authenticated user. The users service
// returns it from GET /users/me and the other services decode it to learn
// who is calling.
type Identity struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    *string    `json:"fullName"`
	DNI         *string    `json:"dni"`
	PhoneNumber *string    `json:"phoneNumber"`
	Status      UserStatus `json:"status"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Username    string  `json:"username" validate:"required,max=50"`
	Password    string  `json:"password" validate:"required"`
	Email       string  `json:"email" validate:"required,max=255"`
	DNI         *string `json:"dni" validate:"omitempty,max=20"`
	FullName    *string `json:"fullName" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=15"`
}

// AuthRequest is the body of POST /users/auth.
type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the body of PATCH /users/{id}. Only non-nil fields
// are written.
type UpdateUserRequest struct {
	FullName    *string     `json:"fullName" validate:"omitempty,max=100"`
	PhoneNumber *string     `json:"phoneNumber" validate:"omitempty,max=15"`
	DNI         *string     `json:"dni" validate:"omitempty,max=20"`
	Status      *UserStatus `json:"status" validate:"omitempty,oneof=POR_VERIFICAR NO_VERIFICADO VERIFICADO"`
}

// HasChanges reports whether at least one updatable field was supplied.
func (r UpdateUserRequest) HasChanges() bool {
	return r.FullName != nil || r.PhoneNumber != nil || r.DNI != nil || r.Status != nil
}
