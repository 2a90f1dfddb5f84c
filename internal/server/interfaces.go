// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the servers managed by this
// package.
//
// Implementations block in [RunServer] until ctx is cancelled, a stop signal
// arrives or serving fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error

	// OnShutdown registers fn to run during Shutdown.
	OnShutdown(fn func())
}
