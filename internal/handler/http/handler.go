// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"path/filepath"

	"github.com/MKhiriev/bus-catch/internal/config"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/metrics"
)

// Handler serves the web application.
type Handler struct {
	mode    config.Mode
	runtime config.Runtime

	app     http.Handler
	metrics *metrics.Metrics

	routes         []route
	appMiddlewares []func(http.Handler) http.Handler

	logger *logger.Logger
}

type route struct {
	pattern string
	handler http.Handler
}

// Option adds development behaviour to a [Handler].
type Option func(h *Handler)

// WithRoute registers handler for pattern ahead of the application handler.
func WithRoute(pattern string, handler http.Handler) Option {
	return func(h *Handler) {
		h.routes = append(h.routes, route{pattern: pattern, handler: handler})
	}
}

// WithAppMiddleware wraps the application handler. The first option added
// is the outermost wrapper.
func WithAppMiddleware(mw func(http.Handler) http.Handler) Option {
	return func(h *Handler) {
		h.appMiddlewares = append(h.appMiddlewares, mw)
	}
}

// NewHandler creates the web handler. The application is served from the
// build output directory under the configured base path. Requests under the
// proxy prefix that reach the application handler get 404, so only an app
// middleware such as the development proxy can answer them.
func NewHandler(cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger, opts ...Option) (*Handler, error) {
	runtime, err := cfg.Runtime()
	if err != nil {
		return nil, err
	}

	spa := newSPAHandler(filepath.Join(cfg.Build.Root, cfg.Build.OutDir), cfg.Build.Base, cfg.Build.AssetsDir)
	h := &Handler{
		mode:    cfg.App.Mode,
		runtime: runtime,
		app:     withoutPrefix(cfg.Proxy.Prefix, spa),
		metrics: m,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Str("mode", h.mode.String()).Msg("http handler created")
	return h, nil
}
