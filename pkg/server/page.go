package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/vango-dev/ssr/pkg/render"
)

// ErrNotFound is returned by a PageFunc when the requested resource does
// not exist. The server answers 404.
var ErrNotFound = errors.New("server: page not found")

// PageFunc builds the page for a request. URL parameters are read with
// chi.URLParam. The returned body is rendered by the server.
type PageFunc func(r *http.Request) (render.PageData, error)

func (s *Server) pageHandler(page PageFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.config.Timeout)
		defer cancel()
		r = r.WithContext(ctx)

		data, err := page(r)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		if data.Lang == "" {
			data.Lang = s.config.Lang
		}

		if s.config.Streaming {
			s.stream(w, r, data)
			return
		}

		var buf bytes.Buffer
		if err := s.config.Renderer.RenderPage(ctx, &buf, data); err != nil {
			s.fail(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			w.Write(buf.Bytes())
		}
	}
}

// stream writes the head before the body has resolved. Once the head is
// out the status is committed, so later errors are only logged.
func (s *Server) stream(w http.ResponseWriter, r *http.Request, data render.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if err := s.config.Renderer.Stream(w).RenderPage(r.Context(), data); err != nil {
		s.config.Logger.Error("stream render failed",
			"path", r.URL.Path,
			"error", err,
		)
	}
}

// fail answers with the status matching err.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	level := s.config.Logger.Error
	if status < http.StatusInternalServerError {
		level = s.config.Logger.Info
	}
	level("page failed",
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)
	http.Error(w, http.StatusText(status), status)
}

// StatusFor maps a page or render error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
