// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/bus-catch/internal/adapter"
	"github.com/MKhiriev/bus-catch/internal/logger"
)

type App struct {
	transport adapter.TransportAPI
	out       io.Writer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(transport adapter.TransportAPI, out io.Writer, logger *logger.Logger) *App {
	return &App{
		transport: transport,
		out:       out,
		logger:    logger,
	}
}

// Run issues GET args[0] with the remaining key=value arguments as the
// query and writes the body to the output. The body is written for every
// status; a non-2xx status is also returned as ErrUnexpectedStatus.
func (a *App) Run(ctx context.Context, args []string) error {
	path, query, err := parseArgs(args)
	if err != nil {
		return err
	}

	a.logger.Debug().
		Str("base_url", a.transport.BaseURL()).
		Str("path", path).
		Msg("fetching")

	resp, err := a.transport.Get(ctx, path, query)
	if err != nil {
		return err
	}

	if _, err = a.out.Write(resp.Body()); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status())
	}
	return nil
}

func parseArgs(args []string) (string, url.Values, error) {
	if len(args) == 0 || args[0] == "" {
		return "", nil, ErrNoPath
	}

	query := url.Values{}
	for _, arg := range args[1:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return "", nil, fmt.Errorf("%w: %q", ErrBadQueryParam, arg)
		}
		query.Add(key, value)
	}

	return args[0], query, nil
}
