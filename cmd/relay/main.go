// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command relay forwards browser requests to the transport API and attaches
// the API key, which never leaves the server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/bus-catch/internal/adapter"
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
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("relay", config.ModeProduction)
	cfg, err := config.GetStructuredConfig("relay", os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger("relay", cfg.App.Mode)

	if cfg.Relay.APIKey == "" {
		log.Warn().Msg("RELAY_API_KEY is empty, every request will fail")
	}

	transport := adapter.NewTransportClient(cfg.RelayClient(), log)
	handler := myHTTP.NewRelayHandler(transport, metrics.New("relay"), log)

	srv, err := server.NewServer(handler.Init(), config.Server{
		HTTPAddress:    cfg.Relay.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
