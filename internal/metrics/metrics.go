// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of one bus-catch process.
//
// Every binary builds its own [Metrics] with [New]. Collectors are registered
// on a private registry instead of the global one, so tests can build as many
// instances as they like.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "buscatch"

// Metrics is the set of collectors exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	// RequestLatency observes served requests by method, route and status.
	RequestLatency *prometheus.HistogramVec
	// UpstreamResponses counts relayed upstream answers by status class.
	UpstreamResponses *prometheus.CounterVec
	// Rebuilds counts development rebuilds by result ("ok" or "error").
	Rebuilds *prometheus.CounterVec
	// LiveClients is the number of connected live-reload sockets.
	LiveClients prometheus.Gauge
}

// New creates the collectors for subsystem (e.g. "web", "relay") and
// registers them together with the Go runtime and process collectors.
func New(subsystem string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "http_requests_latency_seconds",
				Help:      "Latency of HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		UpstreamResponses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "upstream_responses_total",
				Help:      "Upstream responses by status class.",
			},
			[]string{"class"},
		),
		Rebuilds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "rebuilds_total",
				Help:      "Development rebuilds by result.",
			},
			[]string{"result"},
		),
		LiveClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "live_clients",
				Help:      "Connected live-reload clients.",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestLatency,
		m.UpstreamResponses,
		m.Rebuilds,
		m.LiveClients,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// StatusClass returns "2xx", "4xx" and so on; codes outside 100-599 are
// "other".
func StatusClass(code int) string {
	if code < 100 || code > 599 {
		return "other"
	}
	return strconv.Itoa(code/100) + "xx"
}
