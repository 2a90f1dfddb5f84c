// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/bus-catch/internal/config"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates a TransportClient pointed at a test server.
func newTestClient(t *testing.T, cfg config.Client) *TransportClient {
	t.Helper()
	return NewTransportClient(cfg, logger.Nop())
}

var _ TransportAPI = (*TransportClient)(nil)

// ── construction ────────────────────────────────────────────────────────────

func TestNewTransportClient_DefaultBaseURLIsEmpty(t *testing.T) {
	c := newTestClient(t, config.Client{Origin: "http://localhost:5173"})

	assert.Equal(t, "", c.BaseURL())
}

func TestNewTransportClient_BaseURLOverrideKeptVerbatim(t *testing.T) {
	c := newTestClient(t, config.Client{BaseURL: "https://example.com/x/"})

	assert.Equal(t, "https://example.com/x/", c.BaseURL())
}

func TestNewTransportClient_Headers(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		wantAuth string
	}{
		{name: "no key", apiKey: "", wantAuth: ""},
		{name: "with key", apiKey: "secret", wantAuth: "apikey secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, config.Client{APIKey: tt.apiKey, Origin: "http://localhost:5173"})

			h := c.Headers()
			assert.Equal(t, "application/json", h.Get("Accept"))
			assert.Equal(t, tt.wantAuth, h.Get("Authorization"))
		})
	}
}

func TestHeaders_ReturnsCopy(t *testing.T) {
	c := newTestClient(t, config.Client{Origin: "http://localhost:5173"})

	h := c.Headers()
	h.Set("Accept", "text/plain")

	assert.Equal(t, "application/json", c.Headers().Get("Accept"))
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestGet_SendsDefaultsToOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/tp/stop_finder", r.URL.Path)
		assert.Equal(t, "rapidJSON", r.URL.Query().Get("outputFormat"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "apikey k1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"locations":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, config.Client{BaseURL: srv.URL, APIKey: "k1"})
	resp, err := c.Get(context.Background(), "/v1/tp/stop_finder", url.Values{"outputFormat": {"rapidJSON"}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"locations":[]}`, resp.String())
}

func TestGet_EmptyBaseURLResolvesAgainstOrigin(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, config.Client{Origin: srv.URL})
	resp, err := c.Get(context.Background(), "/api/v1/tp/trip", nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "/api/v1/tp/trip", gotPath)
}

func TestGet_NoAuthorizationWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		assert.False(t, present)
	}))
	defer srv.Close()

	c := newTestClient(t, config.Client{BaseURL: srv.URL})
	_, err := c.Get(context.Background(), "/", nil)

	require.NoError(t, err)
}

func TestGet_Non2xxIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ErrorDetails":{"Message":"invalid key"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, config.Client{BaseURL: srv.URL})
	resp, err := c.Get(context.Background(), "/v1/tp/trip", nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Contains(t, resp.String(), "invalid key")
}

func TestGet_TransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c := newTestClient(t, config.Client{BaseURL: addr})
	_, err := c.Get(context.Background(), "/v1/tp/trip", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get /v1/tp/trip")
}

func TestGet_NoBaseURL(t *testing.T) {
	c := newTestClient(t, config.Client{})
	_, err := c.Get(context.Background(), "/v1/tp/trip", nil)

	assert.ErrorIs(t, err, ErrNoBaseURL)
}

func TestGet_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(t, config.Client{BaseURL: srv.URL})
	_, err := c.Get(ctx, "/", nil)

	assert.ErrorIs(t, err, context.Canceled)
}
