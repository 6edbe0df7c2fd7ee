// Package metrics exports operation, collection and store gauges to Prometheus.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/abcstark/team-wellbeing/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wellbeing"

// Transport labels.
const (
	TransportMCP  = "mcp"
	TransportHTTP = "http"
)

// StatisticsSource supplies record counts for the store gauges.
type StatisticsSource interface {
	Statistics() store.Statistics
}

// Recorder owns a private registry with the service metrics.
type Recorder struct {
	registry    *prometheus.Registry
	operations  *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	collections *prometheus.CounterVec
}

// New creates a recorder. When stats is non-nil, per-collection record gauges
// are registered against it.
func New(stats StatisticsSource) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Facade operations by transport, operation and outcome.",
		}, []string{"transport", "operation", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Facade operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"transport", "operation"}),
		collections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collections_total",
			Help:      "Data collection attempts by trigger and outcome.",
		}, []string{"trigger", "outcome"}),
	}

	r.registry.MustRegister(
		r.operations,
		r.durations,
		r.collections,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if stats != nil {
		r.registerStoreGauges(stats)
	}
	return r
}

func (r *Recorder) registerStoreGauges(stats StatisticsSource) {
	gauge := func(collection string, count func(store.Statistics) int) prometheus.GaugeFunc {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "store_records",
			Help:        "Records held in the current snapshot.",
			ConstLabels: prometheus.Labels{"collection": collection},
		}, func() float64 {
			return float64(count(stats.Statistics()))
		})
	}
	r.registry.MustRegister(
		gauge("messages", func(s store.Statistics) int { return s.MessagesCount }),
		gauge("issues_a", func(s store.Statistics) int { return s.IssuesACount }),
		gauge("issues_b", func(s store.Statistics) int { return s.IssuesBCount }),
	)
}

// Observe records one operation outcome.
func (r *Recorder) Observe(_ context.Context, transport, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	outcome := "success"
	if !success {
		outcome = "error"
	}
	r.operations.WithLabelValues(transport, operation, outcome).Inc()
	r.durations.WithLabelValues(transport, operation).Observe(duration.Seconds())
}

// ObserveCollection implements facade.CollectionObserver.
func (r *Recorder) ObserveCollection(trigger, outcome string) {
	r.collections.WithLabelValues(trigger, outcome).Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
