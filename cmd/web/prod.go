// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !dev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bus-catch/internal/config"
	myHTTP "github.com/MKhiriev/bus-catch/internal/handler/http"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/metrics"
)

// defaultMode is the mode used when nothing configures one.
const defaultMode = config.ModeProduction

// devOptions adds nothing outside the dev build; the application is served
// from the existing build output. Development mode sends API calls to the
// proxy prefix, which only the dev build serves, so it is refused here.
func devOptions(_ context.Context, cfg *config.StructuredConfig, _ *metrics.Metrics, _ *logger.Logger) ([]myHTTP.Option, func(), error) {
	if !cfg.App.Mode.IsProduction() {
		return nil, nil, fmt.Errorf("%s mode needs the development proxy: build with -tags dev", cfg.App.Mode)
	}
	return nil, func() {}, nil
}
