package utils

import (
	"time"

	"github.com/MKhiriev/next-holiday/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10*time.Second, log)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient whose requests time out after
// timeout (no timeout when zero) and whose internal resty diagnostics are
// routed to log. Automatic retries are disabled: a failed outbound call is
// reported to the caller as is.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration, log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetLogger(&restyLogger{log: log})

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// restyLogger adapts *logger.Logger to the resty.Logger interface.
type restyLogger struct {
	log *logger.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(format, v...)
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}
