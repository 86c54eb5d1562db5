package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/models"
)

func (h *Handler) createRoute(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRouteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	route, err := h.services.RouteService.CreateRoute(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{ID: route.ID, CreatedAt: route.CreatedAt}, http.StatusCreated)
}

// listRoutes answers GET /routes, optionally narrowed by ?flight=.
func (h *Handler) listRoutes(w http.ResponseWriter, r *http.Request) {
	var flightID *string
	if flight := r.URL.Query().Get("flight"); flight != "" {
		flightID = &flight
	}

	routes, err := h.services.RouteService.ListRoutes(r.Context(), flightID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if routes == nil {
		routes = []models.Route{}
	}

	utils.WriteJSON(w, routes, http.StatusOK)
}

func (h *Handler) getRoute(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	route, err := h.services.RouteService.GetRoute(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, route, http.StatusOK)
}

func (h *Handler) deleteRoute(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.RouteService.DeleteRoute(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "route deleted"}, http.StatusOK)
}
