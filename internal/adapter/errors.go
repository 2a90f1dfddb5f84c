// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrNoBaseURL is returned by Get when neither a base URL override nor a
	// serving origin is configured and path is not absolute.
	ErrNoBaseURL = errors.New("transport client has no base url")
)
