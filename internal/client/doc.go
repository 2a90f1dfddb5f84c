// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the transport API.
//
// It turns "<path> [key=value ...]" arguments into one GET request issued
// through the shared transport client and prints the response body.
package client
