// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of inter-service communication
// with the users service.
//
// The primary abstraction is [UsersAdapter], which lets the routes and posts
// services resolve a bearer token into the caller's [models.Identity]
// without knowing the transport. The package ships an HTTP/REST
// implementation ([NewUsersHTTPAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-travel-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/users_adapter_mock.go -package=mock

// UsersAdapter defines transport-agnostic communication with the users
// service.
type UsersAdapter interface {
	// ValidateToken asks the users service who owns token. Exactly one
	// upstream request is made per call; results are never cached.
	//
	// Returns [ErrUnauthorized] (wrapped) when the users service rejects the
	// token as unknown or expired, [ErrForbidden] when it considers the
	// Authorization header malformed, [ErrUnexpectedStatus] for any other
	// non-2xx answer, [ErrDecodingResponse] when the body is not an identity
	// and [ErrRequestFailed] on network failures and timeouts.
	ValidateToken(ctx context.Context, token string) (models.Identity, error)
}
