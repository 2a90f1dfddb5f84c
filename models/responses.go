// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RuntimeConfig is the public part of the runtime configuration record
// served to the web application. The API key is never part of it.
type RuntimeConfig struct {
	Mode       string `json:"mode"`
	APIBaseURL string `json:"apiBaseUrl"`
}

// ErrorResponse is the JSON body of every error the servers produce.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LiveMessage is a message pushed to browsers over the live-reload socket.
type LiveMessage struct {
	// Type is "connected", "reload" or "build-error".
	Type string `json:"type"`
	// Data carries the build error text for "build-error".
	Data string `json:"data,omitempty"`
}
