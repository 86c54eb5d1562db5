package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-travel-board/internal/service"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the {id} URL parameter. chi has no uuid matcher, so a
// malformed id reaches the handler and is rejected here.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", service.ErrInvalidID, err)
	}
	return id, nil
}

// queryParam returns nil when name is absent from the query string.
func queryParam(r *http.Request, name string) *string {
	values := r.URL.Query()
	if !values.Has(name) {
		return nil
	}
	value := values.Get(name)
	return &value
}

func identityFromRequest(r *http.Request) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrNoIdentity
	}
	return identity, nil
}
