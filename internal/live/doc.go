// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package live implements live reload for the development server.
//
// A [Watcher] reports source changes to its subscribers after a short
// debounce. A [Hub] keeps the browsers connected on [SocketPath] and pushes
// models.LiveMessage values to them. The browser side is the script served by
// [ClientScript], which the devtools bundle plugin injects into index.html.
package live
