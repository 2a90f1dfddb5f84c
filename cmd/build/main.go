// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command build bundles the application into the output directory and
// prints the emitted files. It builds for production unless a mode is set
// by a flag, the environment or a .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/bus-catch/internal/bundle"
	"github.com/MKhiriev/bus-catch/internal/config"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/tui"
	"github.com/MKhiriev/bus-catch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// defaultMode is the mode of a build nothing else configures.
const defaultMode = config.ModeProduction

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("build", config.ModeProduction)
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	bcfg, err := bundle.NewConfig(cfg.Build, cfg.Proxy)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid build configuration")
	}

	start := time.Now()
	manifest, err := bundle.Build(context.Background(), bcfg, cfg.App.Mode)
	if err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		os.Exit(1)
	}

	fmt.Print(tui.RenderBuildReport(cfg.Build.OutDir, manifest, time.Since(start)))
}

func loadConfig(args []string) (*config.StructuredConfig, error) {
	return config.GetStructuredConfigWithMode("build", args, defaultMode)
}
