// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/bus-catch/internal/config"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/metrics"
	"github.com/MKhiriev/bus-catch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_UnknownMode(t *testing.T) {
	cfg := config.Defaults()
	cfg.App.Mode = "staging"

	_, err := NewHandler(cfg, metrics.New("web"), logger.Nop())
	require.ErrorIs(t, err, config.ErrUnknownMode)
}

func TestHandler_Health(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t))

	rec := serve(router, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandler_RuntimeConfig(t *testing.T) {
	tests := []struct {
		name    string
		mode    config.Mode
		wantURL string
	}{
		{name: "development", mode: config.ModeDevelopment, wantURL: "/api"},
		{name: "production", mode: config.ModeProduction, wantURL: config.UpstreamURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(t)
			cfg.App.Mode = tt.mode
			router := newTestRouter(t, cfg)

			rec := serve(router, http.MethodGet, "/runtime-config.json", nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			assert.NotContains(t, rec.Body.String(), "secret-key")

			var got models.RuntimeConfig
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, models.RuntimeConfig{Mode: string(tt.mode), APIBaseURL: tt.wantURL}, got)
		})
	}
}

func TestHandler_Metrics(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t))

	serve(router, http.MethodGet, "/healthz", nil)
	rec := serve(router, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `buscatch_web_http_requests_latency_seconds_count{method="GET",route="/healthz",status="200"} 1`)
}

func TestHandler_App(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t))

	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantBody  string
		wantCache string
	}{
		{name: "root", target: "/", wantCode: http.StatusOK, wantBody: `<div id="app">`, wantCache: "no-cache"},
		{name: "client route", target: "/stops/200060", wantCode: http.StatusOK, wantBody: `<div id="app">`, wantCache: "no-cache"},
		{name: "hashed asset", target: "/assets/index-0a1b2c3d.js", wantCode: http.StatusOK, wantBody: `console.log("app");`, wantCache: immutableCache},
		{name: "public file", target: "/favicon.ico", wantCode: http.StatusOK, wantBody: "icon"},
		{name: "missing file", target: "/assets/missing.js", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantCache, rec.Header().Get("Cache-Control"))
			}
		})
	}
}

func TestHandler_UnproxiedAPIPrefix(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t))

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantBody string
	}{
		{name: "api call", target: "/api/v1/tp/stop_finder?name_sf=Central", wantCode: http.StatusNotFound, wantBody: `{"error":"` + errMsgNotProxied + `"}`},
		{name: "prefix itself", target: "/api", wantCode: http.StatusNotFound, wantBody: `{"error":"` + errMsgNotProxied + `"}`},
		{name: "prefix as part of a name", target: "/apiary", wantCode: http.StatusOK, wantBody: `<div id="app">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_AppUnderBase(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Build.Base = "/bus/"
	router := newTestRouter(t, cfg)

	rec := serve(router, http.MethodGet, "/bus/assets/index-0a1b2c3d.js", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, "/bus/trips", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<div id="app">`)

	rec = serve(router, http.MethodGet, "/assets/index-0a1b2c3d.js", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_TraceID(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t))

	t.Run("generated", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/healthz", nil)
		assert.Len(t, rec.Header().Get(traceIDHeader), 36)
	})

	t.Run("echoed", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/healthz", http.Header{traceIDHeader: {"trace-123"}})
		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	})
}

func TestHandler_WithRoute(t *testing.T) {
	extra := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("extra"))
	})
	router := newTestRouter(t, newTestConfig(t), WithRoute("/__extra", extra))

	rec := serve(router, http.MethodGet, "/__extra", nil)

	assert.Equal(t, "extra", rec.Body.String())
}

func TestHandler_WithAppMiddleware(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	shortCircuit := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				_, _ = w.Write([]byte("proxied"))
				return
			}
			http.NotFound(w, r)
		})
	}

	router := newTestRouter(t, newTestConfig(t),
		WithAppMiddleware(mark("outer")),
		WithAppMiddleware(mark("inner")),
		WithAppMiddleware(shortCircuit),
	)

	rec := serve(router, http.MethodGet, "/api/v1/tp/stop_finder", nil)

	assert.Equal(t, "proxied", rec.Body.String())
	assert.Equal(t, []string{"outer", "inner"}, order)

	// Fixed routes are not wrapped.
	order = nil
	serve(router, http.MethodGet, "/healthz", nil)
	assert.Empty(t, order)
}
