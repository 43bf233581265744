package render

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/vango-dev/ssr/pkg/vdom"
)

// quietLogger drops all log output.
var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestRenderer builds a renderer with its own name registry.
func newTestRenderer(opts Options) *Renderer {
	return NewRenderer(RendererConfig{
		Options: opts,
		Names:   NewNameRegistry(),
		Logger:  quietLogger,
	})
}

// mustRender renders node and fails the test on error.
func mustRender(t *testing.T, node *vdom.VNode, opts Options) string {
	t.Helper()

	html, err := newTestRenderer(opts).RenderToString(context.Background(), node, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return html
}

type renderCase struct {
	name string
	node *vdom.VNode
	opts Options
	want string
}

func runRenderCases(t *testing.T, tests []renderCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, tt.node, tt.opts); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
