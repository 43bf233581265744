package export

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Exporter renders routes through an http.Handler and stores the results.
type Exporter struct {
	// Handler serves the routes. Required.
	Handler http.Handler

	// Store receives the pages. Required.
	Store Store

	// Concurrency bounds the routes exported at once.
	// Default: 4
	Concurrency int

	// Logger receives progress. Default: slog.Default()
	Logger *slog.Logger
}

// Result describes one exported route.
type Result struct {
	Route    string
	Key      string
	Bytes    int
	Duration time.Duration
}

// Export requests every route and stores the responses. The first failing
// route cancels the rest. Results are returned in route order.
func (e *Exporter) Export(ctx context.Context, routes []string) ([]Result, error) {
	if e.Handler == nil || e.Store == nil {
		return nil, fmt.Errorf("export: Handler and Store are required")
	}
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := e.Concurrency
	if limit <= 0 {
		limit = 4
	}

	results := make([]Result, len(routes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, route := range routes {
		g.Go(func() error {
			res, err := e.exportRoute(gctx, route)
			if err != nil {
				return err
			}
			results[i] = res
			logger.Info("exported", "route", route, "key", res.Key, "bytes", res.Bytes)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Exporter) exportRoute(ctx context.Context, route string) (Result, error) {
	start := time.Now()

	req := httptest.NewRequest(http.MethodGet, route, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	e.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return Result{}, fmt.Errorf("export %s: status %d", route, rec.Code)
	}

	key := KeyFor(route)
	contentType := rec.Header().Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(key))
	}

	body := rec.Body.Bytes()
	if err := e.Store.Put(ctx, key, contentType, body); err != nil {
		return Result{}, fmt.Errorf("export %s: %w", route, err)
	}

	return Result{
		Route:    route,
		Key:      key,
		Bytes:    len(body),
		Duration: time.Since(start),
	}, nil
}

// KeyFor maps a route to the file key a static host serves it from.
func KeyFor(route string) string {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	route = strings.Trim(path.Clean("/"+route), "/")
	if route == "" {
		return "index.html"
	}
	if path.Ext(route) != "" {
		return route
	}
	return route + "/index.html"
}
