// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Client holds the settings of the shared transport client.
type Client struct {
	// BaseURL is the configured base URL override. Empty means request
	// paths resolve against Origin.
	BaseURL string
	// APIKey is attached as "Authorization: apikey <key>" when non-empty.
	APIKey string
	// Origin is the serving origin used when BaseURL is empty.
	Origin string
}

// Client returns the transport client view of the configuration.
func (cfg *StructuredConfig) Client() Client {
	return Client{
		BaseURL: cfg.App.APIBase,
		APIKey:  cfg.App.APIKey,
		Origin:  cfg.App.Origin,
	}
}

// RelayClient returns the transport client view used by the relay: the
// upstream is the base URL and the relay key is attached.
func (cfg *StructuredConfig) RelayClient() Client {
	return Client{
		BaseURL: cfg.Relay.Upstream,
		APIKey:  cfg.Relay.APIKey,
		Origin:  cfg.Relay.Upstream,
	}
}
