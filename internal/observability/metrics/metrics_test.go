package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveIntakeCountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewIntakeMetrics(reg)

	m.ObserveIntake("ok", 0.1)
	m.ObserveIntake("ok", 0.2)
	m.ObserveIntake("missing_fields", 0.05)

	if got := testutil.ToFloat64(m.intakeTotal.WithLabelValues("ok")); got != 2 {
		t.Errorf("expected 2 ok intakes, got %v", got)
	}
	if got := testutil.ToFloat64(m.intakeTotal.WithLabelValues("missing_fields")); got != 1 {
		t.Errorf("expected 1 missing_fields intake, got %v", got)
	}
}

func TestObserveIntakeNilReceiverIsNoop(t *testing.T) {
	var m *IntakeMetrics
	// Must not panic.
	m.ObserveIntake("ok", 0.1)
}

func TestNewIntakeMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewIntakeMetrics(reg)
	m.ObserveIntake("ok", 0.1)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	if !names["q2_leads_intake_total"] {
		t.Error("intake_total not registered")
	}
	if !names["q2_leads_intake_duration_seconds"] {
		t.Error("intake_duration_seconds not registered")
	}
}
