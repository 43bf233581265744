package render

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes the document head before resolving the body, so the browser
// can fetch assets while asynchronous components are still loading.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to w.
// If w implements http.Flusher, content is flushed after each section.
func NewStreamingRenderer(w io.Writer, config RendererConfig) *StreamingRenderer {
	return NewRenderer(config).Stream(w)
}

// Stream returns a streaming renderer writing to w that shares the
// options, name registry and telemetry of r.
func (r *Renderer) Stream(w io.Writer) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: r,
		flusher:  flusher,
		w:        w,
	}
}

// RenderPage renders a complete HTML document with incremental flushing.
// When the body fails to render after the head was sent, the error is
// returned and the document is left unterminated.
func (s *StreamingRenderer) RenderPage(ctx context.Context, page PageData) error {
	var head strings.Builder
	writeDocumentStart(&head, page)
	if _, err := io.WriteString(s.w, head.String()); err != nil {
		return err
	}

	// Flush head immediately for faster first paint
	s.flush()

	body, err := s.RenderToString(ctx, page.Body, page.Context)
	if err != nil {
		return err
	}

	var tail strings.Builder
	writeBody(&tail, page, body)
	if _, err := io.WriteString(s.w, tail.String()); err != nil {
		return err
	}

	// Final flush
	s.flush()
	return nil
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer with optional flushing capability.
// This is useful for testing streaming behavior without using http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
