// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoPath           = errors.New("request path is required")
	ErrBadQueryParam    = errors.New("query parameter must look like key=value")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)
