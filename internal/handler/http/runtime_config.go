// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/utils"
	"github.com/MKhiriev/bus-catch/models"
)

// runtimeConfig serves the public part of the runtime configuration record.
// The API key stays on the server.
func (h *Handler) runtimeConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	_, err := utils.WriteJSON(w, models.RuntimeConfig{
		Mode:       h.mode.String(),
		APIBaseURL: h.runtime.APIBaseURL,
	}, http.StatusOK)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write runtime config")
	}
}
