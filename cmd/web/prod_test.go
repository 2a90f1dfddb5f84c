// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !dev

package main

import (
	"context"
	"testing"

	"github.com/MKhiriev/bus-catch/internal/config"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMode_IsProduction(t *testing.T) {
	assert.Equal(t, config.ModeProduction, defaultMode)
}

func TestDevOptions_RefusesDevelopmentMode(t *testing.T) {
	cfg := config.Defaults()
	cfg.App.Mode = config.ModeDevelopment

	opts, cleanup, err := devOptions(context.Background(), cfg, metrics.New("web"), logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "-tags dev")
	assert.Nil(t, opts)
	assert.Nil(t, cleanup)
}

func TestDevOptions_Production(t *testing.T) {
	cfg := config.Defaults()
	cfg.App.Mode = config.ModeProduction

	opts, cleanup, err := devOptions(context.Background(), cfg, metrics.New("web"), logger.Nop())

	require.NoError(t, err)
	assert.Empty(t, opts)
	require.NotNil(t, cleanup)
	cleanup()
}
