package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/service"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{ID: user.ID, CreatedAt: user.CreatedAt}, http.StatusCreated)
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.UserService.IssueToken(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", token.UserID.String()).Msg("token issued")
	utils.WriteJSON(w, token, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, identity, http.StatusOK)
}

// updateUser patches the profile of user {id}. Unless anonymous updates are
// allowed, only the owner of the account may do so.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !h.app.AllowAnonymousUserUpdate {
		identity, idErr := identityFromRequest(r)
		if idErr != nil {
			writeError(w, r, idErr)
			return
		}
		if identity.ID != id {
			logger.FromRequest(r).Warn().
				Str("user_id", identity.ID.String()).
				Str("target_id", id.String()).
				Msg("attempt to update another user")
			writeError(w, r, service.ErrNotOwner)
			return
		}
	}

	var req models.UpdateUserRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.UpdateUser(r.Context(), id, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "user updated"}, http.StatusOK)
}
