// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidResetToken is returned by the reset guard when the
	// X-Reset-Token header does not carry a valid token for this service.
	ErrInvalidResetToken = errors.New("invalid reset token")

	// ErrNoIdentity is returned when a protected handler runs without an
	// identity in the request context.
	ErrNoIdentity = errors.New("no identity in request context")
)
