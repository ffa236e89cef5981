//go:build !js || !wasm

package http

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates a new HTTP client for regular environments
func NewHTTPClient(opts ...Option) HTTPClient {
	o := buildOptions(opts)

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   o.timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: o.timeout,
		IdleConnTimeout:     90 * time.Second,
	}

	if o.insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   o.timeout,
	}
}
