package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses. Any other status is turned into
// an error wrapping [ErrUnexpectedStatus] and, where one exists, the matching
// status-specific sentinel, so callers can use [errors.Is] on either.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	var kind error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusTooManyRequests:
		kind = ErrTooManyRequests
	case http.StatusInternalServerError:
		kind = ErrInternalServerError
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		kind = ErrBadGateway
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}

	return fmt.Errorf("%w: %w: http %d: %s", ErrUnexpectedStatus, kind, resp.StatusCode(), body)
}
