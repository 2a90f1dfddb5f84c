// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/bus-catch/internal/config"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	headerAccept        = "Accept"
	headerAuthorization = "Authorization"

	mimeJSON         = "application/json"
	apiKeyAuthScheme = "apikey "
)

// TransportClient is the HTTP implementation of [TransportAPI].
type TransportClient struct {
	client *utils.HTTPClient

	baseURL  string
	resolved string

	logger *logger.Logger
}

// NewTransportClient constructs the shared transport client.
//
// cfg.BaseURL is kept verbatim and reported by BaseURL. Requests resolve
// against it, or against cfg.Origin when it is empty. Every request carries
// "Accept: application/json" and, when cfg.APIKey is set,
// "Authorization: apikey <key>".
func NewTransportClient(cfg config.Client, log *logger.Logger) *TransportClient {
	resolved := cfg.BaseURL
	if resolved == "" {
		resolved = cfg.Origin
	}

	header := http.Header{}
	header.Set(headerAccept, mimeJSON)
	if cfg.APIKey != "" {
		header.Set(headerAuthorization, apiKeyAuthScheme+cfg.APIKey)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(resolved),
		utils.WithHeaders(header),
		utils.WithLogger(log),
	)

	return &TransportClient{
		client:   client,
		baseURL:  cfg.BaseURL,
		resolved: strings.TrimRight(resolved, "/"),
		logger:   log,
	}
}

// BaseURL implements [TransportAPI].
func (c *TransportClient) BaseURL() string {
	return c.baseURL
}

// Headers implements [TransportAPI].
func (c *TransportClient) Headers() http.Header {
	return c.client.Header.Clone()
}

// Get implements [TransportAPI]. query may be nil.
func (c *TransportClient) Get(ctx context.Context, path string, query url.Values) (*resty.Response, error) {
	if c.resolved == "" && !isAbsoluteURL(path) {
		return nil, fmt.Errorf("get %s: %w", path, ErrNoBaseURL)
	}

	req := c.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return resp, fmt.Errorf("get %s: %w", path, err)
	}

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("transport request finished")

	return resp, nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs()
}
