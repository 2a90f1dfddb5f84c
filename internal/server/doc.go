// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of a bus-catch binary.
//
// It covers startup, signal handling and graceful shutdown. Shutdown hooks
// registered with OnShutdown run after the listener stops accepting
// requests, so long-lived resources such as the live-reload hub can close
// their own connections.
package server
