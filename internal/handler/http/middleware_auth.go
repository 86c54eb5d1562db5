package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/service"
	"github.com/MKhiriev/go-travel-board/internal/utils"
)

const resetTokenHeader = "X-Reset-Token"

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization: Bearer <token>" header,
// resolves it via [service.TokenValidator] and, on success, stores the
// caller's identity in the request context (see [utils.WithIdentity]).
//
// A missing or malformed header is answered with 403, an unknown or expired
// token with 401 and a failing token validation backend with 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("authorization header rejected")
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrTokenMissing, err))
			return
		}

		ctx := r.Context()
		identity, err := h.services.TokenValidator.ValidateToken(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithIdentity(ctx, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authPresence only checks that an Authorization header is present. It
// backs the legacy "presence" mode of the routes service and never puts an
// identity into the context.
func authPresence(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(r.Header.Get("Authorization")) == "" {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrTokenMissing, utils.ErrMissingAuthHeader))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// resetGuard protects the reset endpoint. Without a configured sign key
// every request passes; otherwise X-Reset-Token must be an HS256 JWT issued
// by the configured issuer for this service.
func (h *Handler) resetGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.app.ResetSignKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		subject, err := utils.ValidateAndParseJWTToken(r.Header.Get(resetTokenHeader), h.app.ResetSignKey, h.app.TokenIssuer)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidResetToken, err))
			return
		}
		if subject != h.service.String() {
			writeError(w, r, fmt.Errorf("%w: token issued for %q", ErrInvalidResetToken, subject))
			return
		}

		next.ServeHTTP(w, r)
	})
}
