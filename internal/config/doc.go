// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the bus-catch binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env files (.env.<mode>.local, .env.<mode>, .env.local, .env)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Missing values are then filled from [Defaults] and the result is
// validated. The runtime mode selects the API base URL through
// [ResolveRuntime]; unknown modes are rejected with [ErrUnknownMode].
package config
