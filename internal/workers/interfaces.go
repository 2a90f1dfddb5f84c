// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background workers of the development server.
//
// It defines the Worker interface and a Workers aggregate that runs several
// workers side by side until their context is cancelled.
package workers

import (
	"context"

	"github.com/MKhiriev/bus-catch/internal/bundle"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. A worker that stops
// because ctx was cancelled returns nil.
type Worker interface {
	Run(ctx context.Context) error
}

// BuildFunc produces the application bundle.
type BuildFunc func(ctx context.Context) (*bundle.Manifest, error)

// Notifier tells connected browsers about build results.
type Notifier interface {
	Reload()
	BuildError(err error)
}
