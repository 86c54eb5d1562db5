package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreatePostRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), identity.ID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CreatedPostResponse{ID: post.ID, UserID: post.UserID, CreatedAt: post.CreatedAt}, http.StatusCreated)
}

// listPosts answers GET /posts?expire=&route=&owner=; the filters are ANDed.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := models.PostQuery{
		Expire: queryParam(r, "expire"),
		Route:  queryParam(r, "route"),
		Owner:  queryParam(r, "owner"),
	}

	posts, err := h.services.PostService.ListPosts(r.Context(), identity.ID, query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), id, identity.ID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "post deleted"}, http.StatusOK)
}
