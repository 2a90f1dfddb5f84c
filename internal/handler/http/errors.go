// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrHijackNotSupported is returned by the middleware response writer
	// when the underlying writer cannot hand over its connection.
	ErrHijackNotSupported = errors.New("response writer does not support hijacking")
)

// Error messages returned as {"error": ...}.
const (
	errMsgRelayKeyNotSet = "relay api key not set"
	errMsgProxyFailed    = "proxy failed"
	errMsgNotProxied     = "api prefix is not proxied by this server"
)
