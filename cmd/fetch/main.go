// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command fetch issues one request against the transport API and prints the
// response body.
//
//	fetch [flags] <path> [key=value ...]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/bus-catch/internal/adapter"
	"github.com/MKhiriev/bus-catch/internal/client"
	"github.com/MKhiriev/bus-catch/internal/config"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/tui"
)

func main() {
	log := logger.NewLogger("fetch", config.ModeProduction)
	cfg, err := config.GetStructuredConfig("fetch", os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger("fetch", cfg.App.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	transport := adapter.NewTransportClient(cfg.Client(), log)
	err = client.NewApp(transport, os.Stdout, log).Run(ctx, cfg.Args)
	if err != nil {
		fmt.Println()
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		if errors.Is(err, client.ErrNoPath) {
			fmt.Fprintln(os.Stderr, "usage: fetch [flags] <path> [key=value ...]")
		}
		os.Exit(1)
	}
	fmt.Println()
}
