// Package metrics holds the Prometheus collectors for the call record store.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Callback outcomes.
const (
	OutcomeAppended  = "appended"
	OutcomeCreated   = "created"
	OutcomeDuplicate = "duplicate"
	OutcomeIgnored   = "ignored"
)

// Record origins.
const (
	OriginAPI      = "api"
	OriginCallback = "callback"
	OriginImport   = "import"
)

// Import row results.
const (
	RowInserted = "inserted"
	RowSkipped  = "skipped"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	Callbacks      *prometheus.CounterVec
	RecordsCreated *prometheus.CounterVec
	ImportRows     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Callbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "callcenter_callbacks_total",
			Help: "Recording callbacks received, by outcome",
		}, []string{"outcome"}),
		RecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "callcenter_call_records_created_total",
			Help: "Call records created, by origin",
		}, []string{"origin"}),
		ImportRows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "callcenter_import_rows_total",
			Help: "Spreadsheet rows processed by bulk import, by result",
		}, []string{"result"}),
	}
}

// ObserveCallback counts one callback with the given outcome.
func (m *Metrics) ObserveCallback(outcome string) {
	m.Callbacks.WithLabelValues(outcome).Inc()
}

// ObserveRecordCreated counts one record created from origin.
func (m *Metrics) ObserveRecordCreated(origin string) {
	m.RecordsCreated.WithLabelValues(origin).Inc()
}

// ObserveImportRows adds inserted and skipped row counts.
func (m *Metrics) ObserveImportRows(inserted, skipped int) {
	m.ImportRows.WithLabelValues(RowInserted).Add(float64(inserted))
	m.ImportRows.WithLabelValues(RowSkipped).Add(float64(skipped))
}
