// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the shared client for the Transport for NSW open
// data API.
//
// The primary abstraction is [TransportAPI]. It decouples consumers (the
// relay handler and the fetch command) from resty so they can be tested
// against a gomock double. [NewTransportClient] is the only implementation.
// Build it once in main and pass it to whatever needs it.
//
// The client is deliberately thin. It does not retry or time out, and it does
// not translate errors. Transport failures come back wrapped with the request
// path. Non-2xx answers come back as ordinary responses.
package adapter

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// TransportAPI issues requests against the transport API.
type TransportAPI interface {
	// BaseURL returns the configured base URL override, or an empty string
	// when request paths resolve against the serving origin.
	BaseURL() string

	// Headers returns a copy of the headers attached to every request.
	Headers() http.Header

	// Get issues GET path?query. Non-2xx statuses are not errors.
	Get(ctx context.Context, path string, query url.Values) (*resty.Response, error)
}
