package requestapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-kit/log"
)

// ConfigError is returned by New when an option is invalid.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("requestapi: configuration error: %s", e.Message)
}

// Option configures a Requester.
type Option func(r *Requester) error

// WithHTTPClient replaces the default *http.Client. Timeouts and transports are
// configured on the client itself.
func WithHTTPClient(client HTTPClient) Option {
	return func(r *Requester) error {
		if client == nil {
			return &ConfigError{"http client cannot be nil"}
		}
		r.client = client
		return nil
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(r *Requester) error {
		if logger == nil {
			return &ConfigError{"logger cannot be nil"}
		}
		r.logger = logger
		return nil
	}
}

// WithRetry enables retries of network failures and 5xx/429 responses.
// attempts counts the first try, so 1 disables retrying. The wait before
// retry n is initialWait * backoff^(n-1).
func WithRetry(attempts int, initialWait time.Duration, backoff float64) Option {
	return func(r *Requester) error {
		if attempts < 1 {
			return &ConfigError{"retry attempts must be at least 1"}
		}
		if initialWait < 0 {
			return &ConfigError{"retry wait cannot be negative"}
		}
		if backoff < 1 {
			return &ConfigError{"retry backoff must be at least 1"}
		}
		r.retry = retryPolicy{attempts: attempts, initialWait: initialWait, backoff: backoff}
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(r *Requester) error {
		if ua == "" {
			return &ConfigError{"user agent cannot be empty"}
		}
		r.userAgent = ua
		return nil
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(r *Requester) error {
		if key == "" {
			return &ConfigError{"header key cannot be empty"}
		}
		r.headers.Add(key, value)
		return nil
	}
}

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}
