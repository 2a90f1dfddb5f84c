// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// Mode is the runtime mode of the application.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// UpstreamURL is the transport API origin.
const UpstreamURL = "https://api.transport.nsw.gov.au"

// runtimeTable maps each known mode to the API base URL the web application
// uses in that mode.
var runtimeTable = map[Mode]string{
	ModeDevelopment: "/api",
	ModeProduction:  UpstreamURL,
}

// Runtime is the configuration record selected by the runtime mode.
// It is a value type and is never mutated after [ResolveRuntime] returns it.
type Runtime struct {
	// APIBaseURL is the base URL the web application sends API requests to.
	APIBaseURL string
	// APIKey is the optional transport API key.
	APIKey string
}

// ParseMode converts s into a [Mode]. An empty string is development; any
// other value outside the known set yields [ErrUnknownMode].
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeDevelopment, nil
	}

	m := Mode(s)
	if _, ok := runtimeTable[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}

	return m, nil
}

// ResolveRuntime returns the [Runtime] record for mode.
func ResolveRuntime(mode Mode, apiKey string) (Runtime, error) {
	m, err := ParseMode(string(mode))
	if err != nil {
		return Runtime{}, err
	}

	return Runtime{APIBaseURL: runtimeTable[m], APIKey: apiKey}, nil
}

// IsProduction reports whether m is the production mode.
func (m Mode) IsProduction() bool {
	return m == ModeProduction
}

// String implements [fmt.Stringer].
func (m Mode) String() string {
	if m == "" {
		return string(ModeDevelopment)
	}
	return string(m)
}

// Runtime resolves the runtime configuration record from App.Mode and
// App.APIKey.
func (cfg *StructuredConfig) Runtime() (Runtime, error) {
	return ResolveRuntime(cfg.App.Mode, cfg.App.APIKey)
}
