package maze

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ConfigurationError reports missing or invalid requester configuration.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	prefix := "invalid maze configuration"
	if e.Key == EnvBaseURL {
		prefix = "could not find maze"
	}
	if e.Key == "" {
		return prefix + ": " + e.Reason
	}
	return fmt.Sprintf("%s: %s %s", prefix, e.Key, e.Reason)
}

// UnsupportedMethodError is returned when a caller asks for a verb outside GET, POST and PUT.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported method %q: expected one of %s", e.Method, strings.Join(methodNames(), ", "))
}

// RequestError is returned when the maze answers with a status >= 300 or the
// request times out. Exactly one of StatusCode and Timeout is set.
type RequestError struct {
	Method Method
	URL    string

	// StatusCode is 0 when no response was received.
	StatusCode int

	// Body is the raw response body text.
	Body string

	Timeout bool

	// Cause is the transport error behind a timeout.
	Cause error
}

func (e *RequestError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Timeout {
		return fmt.Sprintf("request to %s timed out", e.URL)
	}
	var b strings.Builder
	b.WriteString("invalid response received")
	if e.StatusCode != 0 {
		b.WriteString(fmt.Sprintf(" (%d", e.StatusCode))
		if t := http.StatusText(e.StatusCode); t != "" {
			b.WriteString(" ")
			b.WriteString(t)
		}
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(e.Body)
	return b.String()
}

func (e *RequestError) Unwrap() error { return e.Cause }

// AsRequestError extracts *RequestError.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsTimeout reports whether err is a RequestError caused by a timeout.
func IsTimeout(err error) bool {
	re, ok := AsRequestError(err)
	return ok && re.Timeout
}

// RelayStatus maps a requester error to the status and body a relaying
// handler should answer with: 504 for timeouts, 502 for upstream statuses
// >= 300 and 500 for anything else.
func RelayStatus(err error) (int, string) {
	re, ok := AsRequestError(err)
	switch {
	case !ok:
		return http.StatusInternalServerError, err.Error()
	case re.Timeout:
		return http.StatusGatewayTimeout, re.Error()
	default:
		return http.StatusBadGateway, re.Body
	}
}
