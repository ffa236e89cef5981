package http

import (
	"net/http"
	"time"
)

// DefaultTimeout is applied to every request when no timeout is configured
const DefaultTimeout = 5 * time.Second

// HTTPClient interface abstracts HTTP client operations
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type clientOptions struct {
	timeout            time.Duration
	insecureSkipVerify bool
}

// Option configures the client returned by NewHTTPClient
type Option func(*clientOptions)

// WithTimeout bounds connect, TLS handshake and the whole exchange
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. Verification is on unless this is set.
func WithInsecureSkipVerify(skip bool) Option {
	return func(o *clientOptions) {
		o.insecureSkipVerify = skip
	}
}

func buildOptions(opts []Option) clientOptions {
	o := clientOptions{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
