// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("https://api.transport.nsw.gov.au"))
//	resp, err := client.R().Get("/v1/tp/stop_finder")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures the underlying resty.Client.
type HTTPClientOption func(c *resty.Client)

// WithBaseURL sets the base URL every relative request path is joined to.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithHeaders adds default headers sent on every request.
func WithHeaders(header http.Header) HTTPClientOption {
	return func(c *resty.Client) {
		for k := range header {
			c.SetHeader(k, header.Get(k))
		}
	}
}

// WithLogger routes resty's internal warnings and errors to l.
func WithLogger(l resty.Logger) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetLogger(l)
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. No retries and no timeout are
// configured; callers get transport errors and non-2xx responses as-is.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New()
	for _, opt := range opts {
		opt(c)
	}

	return &HTTPClient{Client: c}
}
