package render

import (
	"context"
	"fmt"
	"runtime/debug"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vango-dev/ssr/pkg/vdom"
)

// PanicError carries a non-error value a component panicked with.
// Panics with an error value are returned as that error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("render: component panicked: %v", e.Value)
}

// resolveComponent invokes a component and walks its output.
func (r *Renderer) resolveComponent(ctx context.Context, node *vdom.VNode, rc vdom.RenderContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	label := componentLabel(node.Comp)
	ctx, span := r.tracer.Start(ctx, "ssr.component")
	defer span.End()
	span.SetAttributes(attribute.String("vango_ssr.component", label))
	r.logger.Debug("ssr: resolving component", "component", label)

	props := vdom.NodeProps(node)

	var (
		rendered *vdom.VNode
		err      error
	)
	switch c := node.Comp.(type) {
	case *vdom.FuncComponent:
		r.metrics.component("func")
		rendered, err = guard(func() (*vdom.VNode, error) {
			return c.Render(props, rc), nil
		})
	case *vdom.ClassComponent:
		r.metrics.component("class")
		rendered, rc, err = r.mountClass(ctx, c, props, rc)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownComponent, c)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return r.resolve(ctx, rendered, rc, !r.opts.ExpandHighOrder, false)
}

// mountClass instantiates a class component, waits for its pre-render hook
// and renders it. The returned context carries the child context, if any;
// rc itself is left untouched.
func (r *Renderer) mountClass(ctx context.Context, c *vdom.ClassComponent, props vdom.Props, rc vdom.RenderContext) (*vdom.VNode, vdom.RenderContext, error) {
	if c.New == nil {
		return nil, rc, fmt.Errorf("%w: class without constructor", ErrUnknownComponent)
	}

	inst, err := guard(func() (vdom.Instance, error) {
		return c.New(props, rc), nil
	})
	if err != nil {
		return nil, rc, err
	}
	if inst == nil {
		return nil, rc, ErrNilInstance
	}

	binder, _ := inst.(vdom.Binder)
	if binder != nil {
		binder.Bind(props, rc)
	}

	if m, ok := inst.(vdom.WillMounter); ok {
		extra, err := guard(func() (vdom.Props, error) {
			return m.ComponentWillMount(ctx)
		})
		if err != nil {
			return nil, rc, err
		}
		if len(extra) > 0 {
			props = props.Merge(extra)
			if binder != nil {
				binder.Bind(props, rc)
			}
		}
	}

	state := vdom.State{}
	if s, ok := inst.(vdom.Stateful); ok {
		if st := s.CurrentState(); st != nil {
			state = st
		}
	}

	out, err := guard(func() (mounted, error) {
		rendered := inst.Render(props, state, rc)
		if p, ok := inst.(vdom.ChildContextProvider); ok {
			return mounted{rendered, rc.Extend(p.GetChildContext())}, nil
		}
		return mounted{rendered, rc}, nil
	})
	if err != nil {
		return nil, rc, err
	}
	return out.node, out.rc, nil
}

// mounted is the output of a class render and the context for its subtree.
type mounted struct {
	node *vdom.VNode
	rc   vdom.RenderContext
}

// guard runs fn, turning a panic into an error.
func guard[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = panicError(rec)
		}
	}()
	return fn()
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return &PanicError{Value: rec, Stack: debug.Stack()}
}

// componentLabel names a component for logs and spans without touching
// the placeholder registry.
func componentLabel(c vdom.Component) string {
	switch v := c.(type) {
	case *vdom.FuncComponent:
		if name := firstNonEmpty(v.DisplayName, v.Name); name != "" {
			return name
		}
	case *vdom.ClassComponent:
		if name := firstNonEmpty(v.DisplayName, v.Name, v.TypeName()); name != "" {
			return name
		}
	}
	return "anonymous"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
