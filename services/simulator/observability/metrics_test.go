// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// Tests for simulator metrics

package observability

import (
	"testing"
)

func TestNilMetricsAreSafe(t *testing.T) {
	var m *SimulatorMetrics

	// Handlers run without InitMetrics in tests; recording must not
	// panic.
	m.RecordRequest("simulate", true)
	m.RecordDuration("simulate", 0.01)
	m.RecordBatchSize(3)
	m.RecordNASARequest("fallback")
}

func TestInitMetrics(t *testing.T) {
	m := InitMetrics()
	if m == nil {
		t.Fatal("InitMetrics returned nil")
	}
	if DefaultMetrics != m {
		t.Error("DefaultMetrics not set to the initialized instance")
	}

	m.RecordRequest("simulate", true)
	m.RecordRequest("simulate", false)
	m.RecordDuration("deflect", 0.002)
	m.RecordBatchSize(10)
	m.RecordNASARequest("success")
}
