package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://users:5000", 5*time.Second)
//	resp, err := client.R().Get("/users/me")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL.
//
// Requests are never retried, so every call maps to exactly one upstream
// request. A zero timeout leaves the resty default (no timeout) in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
