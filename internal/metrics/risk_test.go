package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docrisk/internal/risk"
)

func TestRiskMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewRiskMetrics(reg)
	require.NoError(t, err)

	m.ObserveEvaluation(risk.Summary{Score: 10, EffectiveLevel: risk.LevelHigh})
	m.ObserveEvaluation(risk.Summary{Score: 3, EffectiveLevel: risk.LevelMedium})
	m.ObserveEvaluation(risk.Summary{Score: 5, EffectiveLevel: risk.LevelHigh})

	assert.Equal(t, float64(2), testutil.ToFloat64(m.evaluations.WithLabelValues("HIGH")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.evaluations.WithLabelValues("MEDIUM")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.score))
}

func TestNewRiskMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRiskMetrics(reg)
	require.NoError(t, err)

	_, err = NewRiskMetrics(reg)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	assert.NotPanics(t, func() { r.ObserveEvaluation(risk.Summary{}) })
}
