// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	AggregationRuns     *prometheus.CounterVec
	DocumentsRendered   *prometheus.CounterVec
	ReconcileMismatches prometheus.Counter
	InvoiceSubmissions  *prometheus.CounterVec
	CacheWarmups        *prometheus.CounterVec
}

// New registers every collector on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		AggregationRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_aggregations_total",
			Help: "Calendar aggregations by view.",
		}, []string{"view"}),
		DocumentsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "invoice_documents_rendered_total",
			Help: "Printable invoice documents by kind and outcome.",
		}, []string{"kind", "outcome"}),
		ReconcileMismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "invoice_reconcile_mismatches_total",
			Help: "Generated invoices whose supplied totals disagree with their line items.",
		}),
		InvoiceSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "invoice_submissions_total",
			Help: "Invoice draft submissions by outcome.",
		}, []string{"outcome"}),
		CacheWarmups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "query_cache_warmups_total",
			Help: "Scheduled cache warm-ups by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.AggregationRuns,
		m.DocumentsRendered,
		m.ReconcileMismatches,
		m.InvoiceSubmissions,
		m.CacheWarmups,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
