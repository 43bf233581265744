package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus render metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vango_ssr").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use. When nil the collectors
	// are created but not registered.
	Registry prometheus.Registerer
}

// Metrics holds the Prometheus collectors updated by a Renderer.
// A nil *Metrics records nothing.
type Metrics struct {
	renders    *prometheus.CounterVec
	duration   prometheus.Histogram
	components *prometheus.CounterVec
}

// NewMetrics creates the render collectors.
//
// Metrics collected:
//   - vango_ssr_renders_total: Counter of renders by status
//   - vango_ssr_render_duration_seconds: Histogram of render duration
//   - vango_ssr_components_total: Counter of resolved components by kind
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "vango_ssr"
	}
	if len(config.Buckets) == 0 {
		config.Buckets = prometheus.DefBuckets
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "renders_total",
			Help:      "Total number of tree renders",
		}, []string{"status"}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "render_duration_seconds",
			Help:      "Render duration in seconds, including asynchronous component setup",
			Buckets:   config.Buckets,
		}),

		components: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "components_total",
			Help:      "Total number of resolved components",
		}, []string{"kind"}),
	}
}

func (m *Metrics) observeRender(err error, d time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.renders.WithLabelValues(status).Inc()
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) component(kind string) {
	if m == nil {
		return
	}
	m.components.WithLabelValues(kind).Inc()
}
