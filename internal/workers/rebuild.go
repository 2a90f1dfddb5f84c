// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/bus-catch/internal/live"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// RebuildWorker rebuilds the bundle whenever sources change. Changes that
// arrive during a build are coalesced into one follow-up build.
type RebuildWorker struct {
	build    BuildFunc
	notifier Notifier
	rebuilds *prometheus.CounterVec

	pending chan struct{}
	logger  *logger.Logger
}

// NewRebuildWorker creates the worker. rebuilds is labelled by result and
// may be nil.
func NewRebuildWorker(build BuildFunc, notifier Notifier, rebuilds *prometheus.CounterVec, logger *logger.Logger) *RebuildWorker {
	return &RebuildWorker{
		build:    build,
		notifier: notifier,
		rebuilds: rebuilds,
		pending:  make(chan struct{}, 1),
		logger:   logger,
	}
}

// OnChange implements live.Subscriber.
func (w *RebuildWorker) OnChange(change live.Change) {
	w.logger.Debug().Str("path", change.Path).Str("op", string(change.Op)).Msg("rebuild scheduled")
	select {
	case w.pending <- struct{}{}:
	default:
	}
}

func (w *RebuildWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.pending:
			w.rebuild(ctx)
		}
	}
}

func (w *RebuildWorker) rebuild(ctx context.Context) {
	start := time.Now()
	manifest, err := w.build(ctx)
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return
	}

	if err != nil {
		w.count("error")
		w.logger.Error().Err(err).Msg("rebuild failed")
		w.notifier.BuildError(err)
		return
	}

	w.count("ok")
	w.logger.Info().
		Int("files", len(manifest.Files())).
		Dur("took", time.Since(start)).
		Msg("rebuilt")
	w.notifier.Reload()
}

func (w *RebuildWorker) count(result string) {
	if w.rebuilds != nil {
		w.rebuilds.WithLabelValues(result).Inc()
	}
}
