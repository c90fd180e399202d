// Package metrics exposes Prometheus collectors for risk evaluations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"docrisk/internal/risk"
)

// Recorder observes client evaluations.
type Recorder interface {
	ObserveEvaluation(s risk.Summary)
}

// Nop discards observations.
type Nop struct{}

func (Nop) ObserveEvaluation(risk.Summary) {}

// RiskMetrics records evaluations by effective level and the score distribution.
type RiskMetrics struct {
	evaluations *prometheus.CounterVec
	score       prometheus.Histogram
}

// NewRiskMetrics creates the collectors and registers them on reg.
func NewRiskMetrics(reg prometheus.Registerer) (*RiskMetrics, error) {
	m := &RiskMetrics{
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "risk_client_evaluations_total",
				Help: "Client risk evaluations by effective level.",
			},
			[]string{"level"},
		),
		score: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "risk_client_score",
			Help:    "Distribution of client risk scores.",
			Buckets: []float64{0, 2, 4, 6, 9, 12, 20, 40},
		}),
	}

	for _, c := range []prometheus.Collector{m.evaluations, m.score} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveEvaluation records one client summary.
func (m *RiskMetrics) ObserveEvaluation(s risk.Summary) {
	m.evaluations.WithLabelValues(string(s.EffectiveLevel)).Inc()
	m.score.Observe(float64(s.Score))
}
