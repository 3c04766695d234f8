package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/metrics"
)

func TestMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveCallback(metrics.OutcomeAppended)
	m.ObserveCallback(metrics.OutcomeAppended)
	m.ObserveCallback(metrics.OutcomeCreated)
	m.ObserveRecordCreated(metrics.OriginCallback)
	m.ObserveImportRows(3, 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Callbacks.WithLabelValues(metrics.OutcomeAppended)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Callbacks.WithLabelValues(metrics.OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordsCreated.WithLabelValues(metrics.OriginCallback)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ImportRows.WithLabelValues(metrics.RowInserted)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ImportRows.WithLabelValues(metrics.RowSkipped)))
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
	})
}
