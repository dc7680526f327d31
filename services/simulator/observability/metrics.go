// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides Prometheus metrics for the simulator
// service.
//
// Metrics are exposed via the /metrics endpoint. All metric operations
// are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const metricsNamespace = "meteormadness"

// Subsystem for simulator metrics
const simulatorSubsystem = "simulator"

// SimulatorMetrics holds all Prometheus metrics for the simulation
// endpoints. Initialize once at startup via InitMetrics().
type SimulatorMetrics struct {
	// RequestsTotal counts simulation requests by endpoint and status.
	// Labels: endpoint (simulate, batch_simulate, deflect, ...),
	// status (success, error)
	RequestsTotal *prometheus.CounterVec

	// RequestDurationSeconds measures request handling time.
	// Labels: endpoint
	RequestDurationSeconds *prometheus.HistogramVec

	// BatchScenarios measures how many scenarios a batch request carried.
	BatchScenarios prometheus.Histogram

	// NASARequestsTotal counts outbound NASA NEO API calls by outcome.
	// Labels: outcome (success, error, fallback)
	NASARequestsTotal *prometheus.CounterVec
}

// DefaultMetrics is the singleton instance of SimulatorMetrics.
// Initialized by InitMetrics(). Handlers tolerate a nil instance so
// tests can exercise them without touching the default registry.
var DefaultMetrics *SimulatorMetrics

// InitMetrics initializes the default metrics instance. Call once at
// startup; calling twice panics on duplicate registration.
func InitMetrics() *SimulatorMetrics {
	DefaultMetrics = &SimulatorMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: simulatorSubsystem,
				Name:      "requests_total",
				Help:      "Total number of simulation requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),

		RequestDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: simulatorSubsystem,
				Name:      "request_duration_seconds",
				Help:      "Request handling duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"endpoint"},
		),

		BatchScenarios: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: simulatorSubsystem,
				Name:      "batch_scenarios",
				Help:      "Number of scenarios per batch simulation request",
				Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
			},
		),

		NASARequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: simulatorSubsystem,
				Name:      "nasa_requests_total",
				Help:      "Outbound NASA NEO API calls by outcome",
			},
			[]string{"outcome"},
		),
	}

	return DefaultMetrics
}

// RecordRequest increments the request counter for an endpoint.
func (m *SimulatorMetrics) RecordRequest(endpoint string, success bool) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "error"
	}
	m.RequestsTotal.WithLabelValues(endpoint, status).Inc()
}

// RecordDuration observes a request handling duration.
func (m *SimulatorMetrics) RecordDuration(endpoint string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDurationSeconds.WithLabelValues(endpoint).Observe(seconds)
}

// RecordBatchSize observes the scenario count of a batch request.
func (m *SimulatorMetrics) RecordBatchSize(n int) {
	if m == nil {
		return
	}
	m.BatchScenarios.Observe(float64(n))
}

// RecordNASARequest increments the outbound NASA call counter.
func (m *SimulatorMetrics) RecordNASARequest(outcome string) {
	if m == nil {
		return
	}
	m.NASARequestsTotal.WithLabelValues(outcome).Inc()
}
