// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults returns the configuration used for every field no source set.
// App.APIKey, App.APIBase and Relay.APIKey default to the empty string.
// App.Origin is derived from Server.HTTPAddress after merging.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Mode: ModeDevelopment,
		},
		Server: Server{
			HTTPAddress:    "localhost:5173",
			RequestTimeout: 15 * time.Second,
		},
		Build: Build{
			Root:      ".",
			SrcDir:    "src",
			PublicDir: "public",
			OutDir:    "dist",
			AssetsDir: "assets",
			Base:      "/",
		},
		Proxy: Proxy{
			Prefix: "/api",
			Target: UpstreamURL,
		},
		Relay: Relay{
			HTTPAddress: "localhost:8081",
			Upstream:    UpstreamURL,
		},
	}
}

func (cfg *StructuredConfig) applyDefaults() error {
	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return fmt.Errorf("error applying config defaults: %w", err)
	}

	if cfg.App.Origin == "" {
		cfg.App.Origin = "http://" + cfg.Server.HTTPAddress
	}

	return nil
}
