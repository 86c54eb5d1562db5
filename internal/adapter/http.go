package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
)

const identityPath = "/users/me"

type usersHTTPAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewUsersHTTPAdapter constructs an HTTP/REST implementation of [UsersAdapter].
// It normalises and validates the base URL from cfg.UsersServiceURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. Retries are disabled.
//
// Returns an error if cfg.UsersServiceURL is empty or cannot be parsed as a
// valid URL.
func NewUsersHTTPAdapter(cfg config.Adapter, logger *logger.Logger) (UsersAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.UsersServiceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid users service url: %w", err)
	}

	return &usersHTTPAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ValidateToken implements [UsersAdapter].
func (h *usersHTTPAdapter) ValidateToken(ctx context.Context, token string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	var identity models.Identity
	req := h.client.R().
		SetContext(ctx).
		SetAuthToken(token)
	if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}

	resp, err := req.
		SetResult(&identity).
		Get(identityPath)
	if err != nil {
		log.Err(err).Str("func", "usersHTTPAdapter.ValidateToken").Msg("users service request failed")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Debug().Str("func", "usersHTTPAdapter.ValidateToken").
			Int("status", resp.StatusCode()).
			Msg("users service rejected token")
		return models.Identity{}, err
	}

	if identity.ID == uuid.Nil {
		log.Error().Str("func", "usersHTTPAdapter.ValidateToken").
			Str("content_type", resp.Header().Get("Content-Type")).
			Msg("users service returned a response without identity")
		return models.Identity{}, ErrDecodingResponse
	}

	return identity, nil
}
