package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/ssr/pkg/vdom"
)

// tracerName is the instrumentation scope used when no tracer is configured.
const tracerName = "github.com/vango-dev/ssr/pkg/render"

var (
	// ErrUnknownKind is returned for a VNode with an unsupported Kind.
	ErrUnknownKind = errors.New("render: unknown node kind")

	// ErrUnknownComponent is returned for a component node whose Comp is
	// nil or not one of the vdom component types.
	ErrUnknownComponent = errors.New("render: unknown component type")

	// ErrNilInstance is returned when a class constructor returns nil.
	ErrNilInstance = errors.New("render: component constructor returned nil")
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Options controls the generated markup.
	Options Options

	// Names assigns placeholder names to anonymous components in shallow
	// mode. Defaults to DefaultNames.
	Names *NameRegistry

	// MaxSiblingConcurrency bounds the goroutines resolving the children of
	// a single element. Zero means unbounded.
	MaxSiblingConcurrency int

	// Logger receives debug traces and render failures.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Tracer creates spans for renders and component resolutions.
	// If nil, the global OpenTelemetry tracer provider is used.
	Tracer trace.Tracer

	// Metrics records render counts and durations. Optional.
	Metrics *Metrics
}

// Renderer resolves VNode trees to HTML. A Renderer holds no per-render
// state and is safe for concurrent use.
type Renderer struct {
	opts    Options
	names   *NameRegistry
	limit   int
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *Metrics
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	r := &Renderer{
		opts:    config.Options,
		names:   config.Names,
		limit:   config.MaxSiblingConcurrency,
		logger:  config.Logger,
		tracer:  config.Tracer,
		metrics: config.Metrics,
	}
	if r.names == nil {
		r.names = DefaultNames
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}
	return r
}

// Options returns the options the renderer was built with.
func (r *Renderer) Options() Options {
	return r.opts
}

// RenderToString renders node to HTML. rc is the initial render context
// and may be nil. The call blocks until every component in the tree,
// including those waiting in ComponentWillMount, has resolved. The first
// component error is returned unchanged and no partial markup is produced.
func (r *Renderer) RenderToString(ctx context.Context, node *vdom.VNode, rc vdom.RenderContext) (string, error) {
	if rc == nil {
		rc = vdom.RenderContext{}
	}

	ctx, span := r.tracer.Start(ctx, "ssr.render")
	defer span.End()

	start := time.Now()
	html, err := guard(func() (string, error) {
		return r.resolve(ctx, node, rc, false, false)
	})
	r.metrics.observeRender(err, time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Warn("ssr: render failed", "error", err)
		return "", err
	}
	span.SetAttributes(attribute.Int("vango_ssr.bytes", len(html)))
	return html, nil
}

// RenderToWriter renders node and writes the HTML to w. Nothing is written
// when rendering fails.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, node *vdom.VNode, rc vdom.RenderContext) error {
	html, err := r.RenderToString(ctx, node, rc)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}

// RenderToString renders node with a throwaway Renderer bound to
// DefaultNames.
func RenderToString(ctx context.Context, node *vdom.VNode, rc vdom.RenderContext, opts Options) (string, error) {
	return NewRenderer(RendererConfig{Options: opts}).RenderToString(ctx, node, rc)
}

// resolve dispatches rendering based on node kind. inner is false only for
// the root of the walk and for the direct output of a component when high
// order components are expanded.
func (r *Renderer) resolve(ctx context.Context, node *vdom.VNode, rc vdom.RenderContext, inner, svg bool) (string, error) {
	if node == nil {
		return "", nil
	}

	switch node.Kind {
	case vdom.KindText:
		return encodeEntities(node.Text), nil

	case vdom.KindComponent:
		if node.Comp == nil {
			return "", ErrUnknownComponent
		}
		if r.opts.Shallow && (inner || r.opts.ShallowRoot) {
			return r.resolveElement(ctx, r.names.DisplayName(node.Comp), nil, nil, rc, svg, true)
		}
		return r.resolveComponent(ctx, node, rc)

	case vdom.KindElement:
		return r.resolveElement(ctx, node.Tag, node.Props, node.Children, rc, svg, false)

	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownKind, node.Kind)
	}
}

// resolveElement renders a host element, or a shallow placeholder, with
// its attributes and children.
func (r *Renderer) resolveElement(ctx context.Context, tag string, props vdom.Props, children []*vdom.VNode, rc vdom.RenderContext, svg, isComponent bool) (string, error) {
	s, html := r.openTag(tag, props, rc, svg, isComponent)
	void := vdom.IsVoidElement(tag)

	var pieces []string
	if html == "" {
		var err error
		pieces, err = r.resolveChildren(ctx, tag, children, rc, svg, containsNewline(s))
		if err != nil {
			return "", err
		}
	}
	s += html

	switch {
	case len(pieces) > 0:
		s += strings.Join(pieces, "")
	case r.opts.XML && html == "" && !void:
		return s[:len(s)-1] + " />", nil
	}

	if r.opts.JSX || !void {
		if r.opts.Pretty && containsNewline(s) {
			s += "\n"
		}
		s += "</" + tag + ">"
	}
	return s, nil
}
