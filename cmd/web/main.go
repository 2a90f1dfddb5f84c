// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command web serves the built application together with its runtime
// configuration in production mode. Built with -tags dev it runs in
// development mode by default and also proxies the API prefix to the
// transport API. It then rebuilds on source changes and reloads connected
// browsers.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/bus-catch/internal/config"
	myHTTP "github.com/MKhiriev/bus-catch/internal/handler/http"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/metrics"
	"github.com/MKhiriev/bus-catch/internal/server"
	"github.com/MKhiriev/bus-catch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)

	log := logger.NewLogger("web", defaultMode)
	cfg, err := config.GetStructuredConfigWithMode("web", os.Args[1:], defaultMode)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger("web", cfg.App.Mode)

	ctx := context.Background()
	m := metrics.New("web")

	opts, cleanup, err := devOptions(ctx, cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error preparing development server")
	}

	opts = append(opts, myHTTP.WithBuildInfo(info))
	handler, err := myHTTP.NewHandler(cfg, m, log, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handler")
	}

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}
	srv.OnShutdown(cleanup)

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
