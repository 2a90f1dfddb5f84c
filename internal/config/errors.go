// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Every error
// returned by [GetStructuredConfig] for an invalid value wraps one of them.
var (
	// ErrUnknownMode indicates a runtime mode outside the known set.
	ErrUnknownMode = errors.New("unknown runtime mode")
	// ErrInvalidAppConfigs indicates an invalid API base URL or origin.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates an invalid listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBuildConfigs indicates an invalid project layout or base path.
	ErrInvalidBuildConfigs = errors.New("invalid build configuration")
	// ErrInvalidProxyConfigs indicates an invalid proxy prefix or target.
	ErrInvalidProxyConfigs = errors.New("invalid proxy configuration")
	// ErrInvalidRelayConfigs indicates an invalid relay address or upstream.
	ErrInvalidRelayConfigs = errors.New("invalid relay configuration")
)
