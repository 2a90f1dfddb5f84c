// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. It fails on the first invalid
// group.
func (cfg *StructuredConfig) validate() error {
	if _, err := ParseMode(string(cfg.App.Mode)); err != nil {
		return err
	}

	if cfg.App.APIBase != "" && !isAbsoluteHTTPURL(cfg.App.APIBase) {
		return fmt.Errorf("%w: api base %q must be empty or an absolute http(s) URL", ErrInvalidAppConfigs, cfg.App.APIBase)
	}
	if !isAbsoluteHTTPURL(cfg.App.Origin) {
		return fmt.Errorf("%w: origin %q must be an absolute http(s) URL", ErrInvalidAppConfigs, cfg.App.Origin)
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: address %q: %v", ErrInvalidServerConfigs, cfg.Server.HTTPAddress, err)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if err := cfg.Build.validate(); err != nil {
		return err
	}

	if !strings.HasPrefix(cfg.Proxy.Prefix, "/") || strings.HasSuffix(cfg.Proxy.Prefix, "/") {
		return fmt.Errorf("%w: prefix %q must start and not end with /", ErrInvalidProxyConfigs, cfg.Proxy.Prefix)
	}
	if !isAbsoluteHTTPURL(cfg.Proxy.Target) {
		return fmt.Errorf("%w: target %q must be an absolute http(s) URL", ErrInvalidProxyConfigs, cfg.Proxy.Target)
	}

	if _, _, err := net.SplitHostPort(cfg.Relay.HTTPAddress); err != nil {
		return fmt.Errorf("%w: address %q: %v", ErrInvalidRelayConfigs, cfg.Relay.HTTPAddress, err)
	}
	if !isAbsoluteHTTPURL(cfg.Relay.Upstream) {
		return fmt.Errorf("%w: upstream %q must be an absolute http(s) URL", ErrInvalidRelayConfigs, cfg.Relay.Upstream)
	}

	return nil
}

func (b Build) validate() error {
	if b.Root == "" {
		return fmt.Errorf("%w: empty root", ErrInvalidBuildConfigs)
	}

	for name, dir := range map[string]string{
		"src dir":    b.SrcDir,
		"public dir": b.PublicDir,
		"out dir":    b.OutDir,
		"assets dir": b.AssetsDir,
	} {
		if dir == "" || filepath.IsAbs(dir) {
			return fmt.Errorf("%w: %s %q must be a non-empty relative path", ErrInvalidBuildConfigs, name, dir)
		}
	}

	if filepath.Clean(b.OutDir) == "." {
		return fmt.Errorf("%w: out dir must not be the project root", ErrInvalidBuildConfigs)
	}

	assets := filepath.Clean(b.AssetsDir)
	if assets == ".." || strings.HasPrefix(assets, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: assets dir %q escapes the out dir", ErrInvalidBuildConfigs, b.AssetsDir)
	}

	if !strings.HasPrefix(b.Base, "/") || !strings.HasSuffix(b.Base, "/") {
		return fmt.Errorf("%w: base %q must start and end with /", ErrInvalidBuildConfigs, b.Base)
	}

	return nil
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
