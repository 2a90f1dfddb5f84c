// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the bus-catch servers.
//
// [Handler] serves the web application: the built output with a single-page
// fallback, the public runtime configuration record, health and metrics.
// The development build adds routes and wraps the application handler
// through [Option] values. [RelayHandler] forwards GET requests to the
// transport API with the server-side API key attached.
//
// Request tracing, access logging, panic recovery and latency metrics are
// applied to every route by middleware in this package.
package http
