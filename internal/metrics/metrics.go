// Package metrics provides Prometheus metrics for catalogsync
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nainya/catalogsync/pkg/catalog"
)

// Metrics holds all Prometheus metrics for catalogsync
type Metrics struct {
	// Data Catalog RPC metrics
	CatalogCallsTotal    *prometheus.CounterVec
	CatalogCallDuration  *prometheus.HistogramVec
	CatalogCallsInFlight prometheus.Gauge

	// Facade outcome metrics
	CatalogEventsTotal *prometheus.CounterVec

	UptimeSeconds prometheus.GaugeFunc
	StartTime     time.Time
}

// NewMetrics creates all metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{
		StartTime: time.Now(),
	}

	m.CatalogCallsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogsync_catalog_calls_total",
			Help: "Total number of Data Catalog API calls",
		},
		[]string{"method", "status"},
	)

	m.CatalogCallDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalogsync_catalog_call_duration_seconds",
			Help:    "Duration of Data Catalog API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	m.CatalogCallsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalogsync_catalog_calls_in_flight",
			Help: "Number of Data Catalog API calls currently in progress",
		},
	)

	m.CatalogEventsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogsync_catalog_events_total",
			Help: "Total number of facade outcomes by resource kind",
		},
		[]string{"kind", "outcome"},
	)

	m.UptimeSeconds = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "catalogsync_uptime_seconds",
			Help: "Process uptime in seconds",
		},
		func() float64 { return time.Since(m.StartTime).Seconds() },
	)

	return m
}

// RecordCatalogCall records a Data Catalog call with its gRPC status code
func (m *Metrics) RecordCatalogCall(method string, status string, duration time.Duration) {
	m.CatalogCallsTotal.WithLabelValues(method, status).Inc()
	m.CatalogCallDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordEvent counts one facade outcome
func (m *Metrics) RecordEvent(e catalog.Event) {
	m.CatalogEventsTotal.WithLabelValues(string(e.Kind), string(e.Outcome)).Inc()
}

// Observer returns a catalog.Observer counting events before handing
// them to next. A nil next only counts.
func (m *Metrics) Observer(next catalog.Observer) catalog.Observer {
	return catalog.ObserverFunc(func(e catalog.Event) {
		m.RecordEvent(e)
		if next != nil {
			next.Observe(e)
		}
	})
}
