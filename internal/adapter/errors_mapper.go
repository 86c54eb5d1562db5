package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError accepts only 200 OK. Any other status, 2xx included, fails.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}
