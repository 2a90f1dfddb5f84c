// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build dev

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/bus-catch/internal/bundle"
	"github.com/MKhiriev/bus-catch/internal/config"
	"github.com/MKhiriev/bus-catch/internal/devproxy"
	myHTTP "github.com/MKhiriev/bus-catch/internal/handler/http"
	"github.com/MKhiriev/bus-catch/internal/live"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/metrics"
	"github.com/MKhiriev/bus-catch/internal/workers"
)

// defaultMode is the mode used when nothing configures one.
const defaultMode = config.ModeDevelopment

// devOptions builds the application once, starts the watcher and the
// rebuild worker, and returns the routes and the proxy wrapper of the
// development server. The returned cleanup stops all of it.
func devOptions(ctx context.Context, cfg *config.StructuredConfig, m *metrics.Metrics, log *logger.Logger) ([]myHTTP.Option, func(), error) {
	bcfg, err := bundle.NewConfig(cfg.Build, cfg.Proxy)
	if err != nil {
		return nil, nil, err
	}

	rules := make([]devproxy.Rule, 0, len(bcfg.Server.Proxy))
	for _, p := range bcfg.Server.Proxy {
		rule, err := devproxy.NewRule(p.Prefix, p.Target, p.ChangeOrigin)
		if err != nil {
			return nil, nil, err
		}
		rules = append(rules, rule)
	}

	build := func(ctx context.Context) (*bundle.Manifest, error) {
		return bundle.Build(ctx, bcfg, cfg.App.Mode)
	}
	if _, err = build(ctx); err != nil {
		// The page shows the next build's result; serving continues.
		log.Error().Err(err).Msg("initial build failed")
	}

	hub := live.NewHub(m.LiveClients, log)
	watcher, err := live.NewWatcher(bcfg.Root, []string{cfg.Build.SrcDir, cfg.Build.PublicDir}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}

	rebuild := workers.NewRebuildWorker(build, hub, m.Rebuilds, log)
	watcher.Subscribe(rebuild)
	if err = watcher.Start(); err != nil {
		return nil, nil, fmt.Errorf("start watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		if err := workers.NewWorkers(rebuild).Run(ctx); err != nil {
			log.Error().Err(err).Msg("workers stopped with error")
		}
	}()

	cleanup := func() {
		cancel()
		if err := watcher.Stop(); err != nil {
			log.Warn().Err(err).Msg("failed to stop watcher")
		}
		hub.Close()
	}

	for _, rule := range rules {
		log.Info().Str("prefix", rule.Prefix).Str("target", rule.Target.String()).Msg("dev proxy enabled")
	}

	opts := []myHTTP.Option{
		myHTTP.WithRoute(bundle.DevToolsClientPath, live.ClientScript()),
		myHTTP.WithRoute(live.SocketPath, hub),
		myHTTP.WithAppMiddleware(func(next http.Handler) http.Handler {
			return devproxy.New(rules, next, log)
		}),
	}
	return opts, cleanup, nil
}
