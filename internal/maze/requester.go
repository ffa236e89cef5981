package maze

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dvcrn/maze-requester/internal/credentials"
	serverhttp "github.com/dvcrn/maze-requester/internal/http"
	"github.com/dvcrn/maze-requester/internal/logger"
)

// RequestIDHeader carries a fresh id per dispatched request.
const RequestIDHeader = "X-Request-Id"

// Requester is an authenticated client for the maze REST API.
// It holds no mutable state after construction and is safe for concurrent use.
type Requester struct {
	baseURL    string
	data       interface{}
	headers    http.Header
	httpClient serverhttp.HTTPClient
	log        *zerolog.Logger
}

// NewRequester creates a requester for cfg.BaseURL authenticated with the
// token from provider. data is the JSON payload sent by Post and Put; nil
// means an empty object.
func NewRequester(cfg Config, provider credentials.Provider, data interface{}) (*Requester, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}

	if cfg.BaseURL == "" {
		log.Debug().Strs("inspected", []string{EnvBaseURL, "base_url"}).Msg("Maze base URL is not configured")
		return nil, &ConfigurationError{Key: EnvBaseURL, Reason: "is not set"}
	}

	token, err := credentials.BearerToken(provider)
	if err != nil {
		return nil, err
	}

	if data == nil {
		data = map[string]interface{}{}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = serverhttp.NewHTTPClient(
			serverhttp.WithTimeout(cfg.timeout()),
			serverhttp.WithInsecureSkipVerify(cfg.InsecureSkipVerify),
		)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+token)

	return &Requester{
		baseURL:    cfg.BaseURL,
		data:       data,
		headers:    headers,
		httpClient: httpClient,
		log:        log,
	}, nil
}

// Get issues a GET request to path.
func (r *Requester) Get(path string) (interface{}, error) {
	return r.Request(path, MethodGet)
}

// Post sends the stored payload to path.
func (r *Requester) Post(path string) (interface{}, error) {
	return r.Request(path, MethodPost)
}

// Put sends the stored payload to path.
func (r *Requester) Put(path string) (interface{}, error) {
	return r.Request(path, MethodPut)
}

// Do dispatches using a verb name, for callers that only have a string.
func (r *Requester) Do(path, method string) (interface{}, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return r.Request(path, m)
}

// Request sends one request to baseURL+path and returns the decoded JSON
// body for statuses below 300. Anything else, or a timeout, yields a
// *RequestError. A malformed body on success is returned as the json error.
func (r *Requester) Request(path string, method Method) (interface{}, error) {
	var body io.Reader
	switch method {
	case MethodGet:
	case MethodPost, MethodPut:
		payload, err := json.Marshal(r.data)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	default:
		return nil, &UnsupportedMethodError{Method: string(method)}
	}

	fullURL := r.baseURL + path
	requestID := uuid.NewString()
	log := r.log.With().
		Str("request_id", requestID).
		Str("method", string(method)).
		Str("url", fullURL).
		Logger()

	log.Debug().Msgf("Starting %s request to %s", method, fullURL)

	req, err := http.NewRequest(string(method), fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header = r.headers.Clone()
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, r.timeout(&log, method, fullURL, err)
		}
		return nil, fmt.Errorf("request execution error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, r.timeout(&log, method, fullURL, err)
		}
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode >= 300 {
		return nil, r.errorHandler(&log, method, fullURL, resp.StatusCode, respBody)
	}

	var result interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Requester) errorHandler(log *zerolog.Logger, method Method, url string, status int, body []byte) error {
	log.Warn().Int("status", status).Msgf("Response status = %d", status)
	log.Warn().Int("status", status).Str("body", string(body)).Msg(string(body))
	return &RequestError{
		Method:     method,
		URL:        url,
		StatusCode: status,
		Body:       string(body),
	}
}

func (r *Requester) timeout(log *zerolog.Logger, method Method, url string, cause error) error {
	rerr := &RequestError{
		Method:  method,
		URL:     url,
		Timeout: true,
		Cause:   cause,
	}
	logger.Critical(log).Msg(rerr.Error())
	checkProxySettings(log)
	return rerr
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
