// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bus-catch/internal/adapter"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/metrics"
	"github.com/MKhiriev/bus-catch/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RelayHandler forwards browser requests to the transport API and attaches
// the API key on the way, so the key never reaches the browser.
type RelayHandler struct {
	transport adapter.TransportAPI
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func NewRelayHandler(transport adapter.TransportAPI, m *metrics.Metrics, logger *logger.Logger) *RelayHandler {
	logger.Info().Str("upstream", transport.BaseURL()).Msg("relay handler created")
	return &RelayHandler{
		transport: transport,
		metrics:   m,
		logger:    logger,
	}
}

// Init builds the relay router. Every GET outside /healthz and /metrics is
// relayed.
func (h *RelayHandler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		withTraceID(h.logger),
		withLogging,
		middleware.Recoverer,
		withMetrics(h.metrics),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		}),
	)

	router.Get("/healthz", health)
	router.Handle("/metrics", h.metrics.Handler())
	router.Get("/*", h.relay)

	return router
}

func (h *RelayHandler) relay(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.transport.Headers().Get("Authorization") == "" {
		log.Error().Msg(errMsgRelayKeyNotSet)
		utils.WriteError(w, errMsgRelayKeyNotSet, http.StatusInternalServerError)
		return
	}

	resp, err := h.transport.Get(r.Context(), r.URL.Path, r.URL.Query())
	if err != nil {
		log.Err(err).Str("path", r.URL.Path).Msg("relay request failed")
		h.metrics.UpstreamResponses.WithLabelValues("error").Inc()
		utils.WriteError(w, errMsgProxyFailed, http.StatusBadGateway)
		return
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode())
	if _, err = w.Write(resp.Body()); err != nil {
		log.Err(err).Msg("failed to write relayed body")
	}

	h.metrics.UpstreamResponses.WithLabelValues(metrics.StatusClass(resp.StatusCode())).Inc()
}
