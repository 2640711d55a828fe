package metrics

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters/histograms for the lead intake pipeline.
type IntakeMetrics struct {
	intakeTotal    *prometheus.CounterVec
	intakeDuration *prometheus.HistogramVec
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		intakeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "q2",
			Subsystem: "leads",
			Name:      "intake_total",
			Help:      "Total lead intake requests by outcome",
		}, []string{"outcome"}),
		intakeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "q2",
			Subsystem: "leads",
			Name:      "intake_duration_seconds",
			Help:      "Duration of lead intake handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.intakeTotal, m.intakeDuration)
	return m
}

// ObserveIntake records one intake request with its outcome label.
func (m *IntakeMetrics) ObserveIntake(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.intakeTotal.WithLabelValues(outcome).Inc()
	m.intakeDuration.WithLabelValues(outcome).Observe(seconds)
}
