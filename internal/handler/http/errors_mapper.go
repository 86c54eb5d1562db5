package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/service"
	"github.com/MKhiriev/go-travel-board/internal/store"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/internal/validators"
)

const msgInternalServerError = "internal server error"

// errorStatuses is checked in order: specific sentinels come before the
// generic ones they are wrapped in, so the first match also yields the
// message shown to the client.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrNoChanges, http.StatusBadRequest},
	{service.ErrInvalidID, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{validators.ErrInvalidData, http.StatusBadRequest},

	{service.ErrDuplicateUser, http.StatusPreconditionFailed},
	{service.ErrDuplicateFlight, http.StatusPreconditionFailed},
	{service.ErrInvalidDates, http.StatusPreconditionFailed},
	{service.ErrExpireInPast, http.StatusPreconditionFailed},
	{service.ErrConflict, http.StatusPreconditionFailed},
	{store.ErrUniqueViolation, http.StatusPreconditionFailed},

	{service.ErrTokenMissing, http.StatusForbidden},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenInvalid, http.StatusUnauthorized},

	{service.ErrInvalidCredentials, http.StatusNotFound},
	{service.ErrNotFound, http.StatusNotFound},
	{store.ErrNotFound, http.StatusNotFound},

	{service.ErrNotOwner, http.StatusForbidden},
	{ErrInvalidResetToken, http.StatusForbidden},
}

// statusFromError maps err to an HTTP status and the message safe to return
// to the client. Unknown errors, upstream failures included, become a
// generic 500.
func statusFromError(err error) (int, string) {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status, entry.err.Error()
		}
	}
	return http.StatusInternalServerError, msgInternalServerError
}

// writeError logs err and writes the matching JSON error body. Validation
// failures carry per-field details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	var validationErr *validators.ValidationError
	if status == http.StatusBadRequest && errors.As(err, &validationErr) {
		utils.WriteValidationError(w, message, validationErr.Fields, status)
		return
	}

	utils.WriteError(w, message, status)
}
