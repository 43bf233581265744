package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Server is an HTTP front end for server-side rendered pages.
type Server struct {
	config  Config
	router  chi.Router
	tracer  trace.Tracer
	metrics *httpMetrics

	mu         sync.Mutex
	patterns   []string
	httpServer *http.Server
}

// New creates a Server. Pages are added with Page.
func New(config Config) *Server {
	config = config.withDefaults()

	s := &Server{
		config:  config,
		router:  chi.NewRouter(),
		tracer:  otel.Tracer(config.TracerName),
		metrics: newHTTPMetrics(config.Registry),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.trace)
	s.router.Use(s.measure)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	if config.MetricsPath != "-" {
		s.router.Method(http.MethodGet, config.MetricsPath,
			promhttp.HandlerFor(config.Registry, promhttp.HandlerOpts{Registry: config.Registry}))
	}

	return s
}

// Page registers page under a chi route pattern for GET and HEAD requests.
func (s *Server) Page(pattern string, page PageFunc) {
	h := s.pageHandler(page)
	s.router.Get(pattern, h)
	s.router.Head(pattern, h)

	s.mu.Lock()
	s.patterns = append(s.patterns, pattern)
	s.mu.Unlock()
}

// Routes returns the registered patterns without URL parameters, in
// registration order. These are the pages that can be exported without
// knowing parameter values.
func (s *Server) Routes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, p := range s.patterns {
		if !strings.ContainsAny(p, "{*") {
			out = append(out, p)
		}
	}
	return out
}

// Router returns the underlying chi router for mounting extra handlers.
func (s *Server) Router() chi.Router {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Serve accepts connections on l until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.config.Logger.Info("server starting", "address", l.Addr().String())
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		s.config.Logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Run listens on addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			s.config.Logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.config.Logger.Info("server shutdown complete")
	return nil
}
