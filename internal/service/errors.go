package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidID           = errors.New("invalid id")
	ErrNoChanges           = errors.New("no updatable field provided")

	ErrConflict        = errors.New("conflict")
	ErrDuplicateUser   = errors.New("username or email already exists")
	ErrDuplicateFlight = errors.New("a route for this flight already exists")
	ErrInvalidDates    = errors.New("invalid date range")
	ErrExpireInPast    = errors.New("expireAt must be a valid future timestamp")

	ErrTokenMissing   = errors.New("missing or malformed authorization header")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenIsExpired = errors.New("token is expired")

	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotOwner           = errors.New("access denied")

	ErrUpstream = errors.New("users service unavailable")
)
