// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the web router. Requests no other route claims go to the
// application handler.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		withTraceID(h.logger),
		withLogging,
		middleware.Recoverer,
		withMetrics(h.metrics),
	)

	router.Get("/healthz", health)
	router.Handle("/metrics", h.metrics.Handler())
	router.Get("/runtime-config.json", h.runtimeConfig)

	for _, rt := range h.routes {
		router.Handle(rt.pattern, rt.handler)
	}

	app := withGZip(h.app)
	for i := len(h.appMiddlewares) - 1; i >= 0; i-- {
		app = h.appMiddlewares[i](app)
	}
	router.Handle("/*", app)

	return router
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
