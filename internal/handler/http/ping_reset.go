package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/models"
)

// ping answers the liveness probe without touching the database. The routes
// service replies with plain text, the other two with JSON.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if h.service == config.ServiceRoutes {
		utils.WriteText(w, "pong", http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Message: h.service.String() + " service is running"}, http.StatusOK)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.ResetService.Reset(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Warn().Int64("deleted", deleted).Msg("reset requested")

	if h.service == config.ServiceUsers {
		utils.WriteJSON(w, models.StatusResponse{Message: "database reset successfully"}, http.StatusOK)
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Msg: "all data deleted"}, http.StatusOK)
}
