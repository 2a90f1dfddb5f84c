// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by every
// bus-catch binary. It is built once at process start by [GetStructuredConfig]
// and passed by pointer to the components that need it.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the runtime mode and the values that describe how the web
	// application talks to the transport API.
	App App `envPrefix:"APP_"`

	// Server holds the listen address and timeouts of the web server.
	Server Server `envPrefix:"SERVER_"`

	// Build holds the project layout and output settings of the packer.
	Build Build `envPrefix:"BUILD_"`

	// Proxy holds the development reverse proxy rule.
	Proxy Proxy `envPrefix:"PROXY_"`

	// Relay holds the settings of the API-key relay.
	Relay Relay `envPrefix:"RELAY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from .env files, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the command line arguments left after the flags.
	Args []string
}

// App holds application-level settings.
type App struct {
	// Mode selects the runtime configuration record ("development" or
	// "production"). Empty means development.
	// Env: APP_MODE
	Mode Mode `env:"MODE"`

	// APIKey is the transport API key. Optional; when set it is attached to
	// every request issued by the transport client.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// APIBase overrides the transport client's base URL. Empty means request
	// paths resolve against Origin.
	// Env: APP_API_BASE
	APIBase string `env:"API_BASE"`

	// Origin is the serving origin used to resolve relative request paths
	// when APIBase is empty (e.g. "http://localhost:5173").
	// Env: APP_ORIGIN
	Origin string `env:"ORIGIN"`
}

// Server holds network and timeout settings of the web server.
type Server struct {
	// HTTPAddress is the TCP address the web server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Build describes the project layout consumed by the packer.
type Build struct {
	// Root is the project root that contains index.html.
	// Env: BUILD_ROOT
	Root string `env:"ROOT"`

	// SrcDir is the source directory relative to Root. The "@" alias
	// points here.
	// Env: BUILD_SRC_DIR
	SrcDir string `env:"SRC_DIR"`

	// PublicDir holds files copied verbatim to the output root.
	// Env: BUILD_PUBLIC_DIR
	PublicDir string `env:"PUBLIC_DIR"`

	// OutDir is the output directory relative to Root.
	// Env: BUILD_OUT_DIR
	OutDir string `env:"OUT_DIR"`

	// AssetsDir is the directory for generated assets, relative to OutDir.
	// Env: BUILD_ASSETS_DIR
	AssetsDir string `env:"ASSETS_DIR"`

	// Base is the public path the application is served from.
	// Env: BUILD_BASE
	Base string `env:"BASE"`
}

// Proxy describes the development reverse proxy rule.
type Proxy struct {
	// Prefix is the request path prefix that is forwarded and stripped.
	// Env: PROXY_PREFIX
	Prefix string `env:"PREFIX"`

	// Target is the upstream origin requests are forwarded to.
	// Env: PROXY_TARGET
	Target string `env:"TARGET"`
}

// Relay holds settings of the API-key relay.
type Relay struct {
	// HTTPAddress is the TCP address the relay listens on.
	// Env: RELAY_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Upstream is the transport API origin.
	// Env: RELAY_UPSTREAM
	Upstream string `env:"UPSTREAM"`

	// APIKey is attached to every upstream request. Must be kept
	// confidential; it is never sent back to callers.
	// Env: RELAY_API_KEY
	APIKey string `env:"API_KEY"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the command-line arguments without the
// program name; name is used for flag usage output. The mode defaults to
// development.
func GetStructuredConfig(name string, args []string) (*StructuredConfig, error) {
	return GetStructuredConfigWithMode(name, args, ModeDevelopment)
}

// GetStructuredConfigWithMode is [GetStructuredConfig] with defaultMode used
// when neither a flag, the environment nor a .env file sets the mode.
func GetStructuredConfigWithMode(name string, args []string, defaultMode Mode) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaultMode(defaultMode).
		withDotEnv(".").
		withEnv().
		withFlags(name, args).
		withJSON().
		build()
}
