package server

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/ssr/pkg/render"
)

// Config configures a Server.
type Config struct {
	// Renderer renders every page. Required.
	Renderer *render.Renderer

	// Timeout bounds a single page render.
	// Default: 10 seconds
	Timeout time.Duration

	// Streaming flushes the document head before the body resolves.
	Streaming bool

	// Lang is applied to pages that do not set their own.
	Lang string

	// MetricsPath is where Prometheus metrics are served.
	// Default: "/metrics". Set to "-" to disable.
	MetricsPath string

	// Registry receives the HTTP metrics and backs the metrics endpoint.
	// Default: a fresh registry
	Registry *prometheus.Registry

	// Logger receives request logs.
	// Default: slog.Default()
	Logger *slog.Logger

	// TracerName is the OpenTelemetry tracer name.
	// Default: "github.com/vango-dev/ssr/pkg/server"
	TracerName string

	// ReadHeaderTimeout is the http.Server read header timeout.
	// Default: 10 seconds
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 30 seconds
	ShutdownTimeout time.Duration
}

const defaultTracerName = "github.com/vango-dev/ssr/pkg/server"

// withDefaults returns a copy of c with zero fields defaulted.
func (c Config) withDefaults() Config {
	if c.Renderer == nil {
		c.Renderer = render.NewRenderer(render.RendererConfig{})
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.MetricsPath == "" {
		c.MetricsPath = "/metrics"
	}
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.TracerName == "" {
		c.TracerName = defaultTracerName
	}
	if c.ReadHeaderTimeout <= 0 {
		c.ReadHeaderTimeout = 10 * time.Second
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 30 * time.Second
	}
	return c
}
