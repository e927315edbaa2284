// Package metrics exposes Prometheus collectors for RPCs and settlements.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/kasir/internal/checkout"
)

const namespace = "kasir"

// Metrics holds every collector on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	Requests      *prometheus.CounterVec
	Latency       *prometheus.HistogramVec
	Settlements   *prometheus.CounterVec
	SettledAmount *prometheus.CounterVec
	OpenTills     prometheus.Gauge
}

// New creates and registers the collectors, plus the Go runtime and process
// collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Total number of RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		Settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "settlements_total",
			Help:      "Settlements by payment method and outcome.",
		}, []string{"method", "outcome"}),
		SettledAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "settled_amount_total",
			Help:      "Sum of settled grand totals in minor currency units.",
		}, []string{"method"}),
		OpenTills: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tills_open",
			Help:      "Number of open tills.",
		}),
	}

	m.registry.MustRegister(
		m.Requests,
		m.Latency,
		m.Settlements,
		m.SettledAmount,
		m.OpenTills,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) TillsOpen(n int) {
	m.OpenTills.Set(float64(n))
}

func (m *Metrics) SettlementSucceeded(s checkout.Settlement) {
	m.Settlements.WithLabelValues(string(s.Method), "succeeded").Inc()
	m.SettledAmount.WithLabelValues(string(s.Method)).Add(float64(s.GrandTotal))
}

func (m *Metrics) SettlementFailed(s checkout.Settlement, _ error) {
	m.Settlements.WithLabelValues(string(s.Method), "failed").Inc()
}
