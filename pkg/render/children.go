package render

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/ssr/pkg/vdom"
)

// resolveChildren renders every child of tag concurrently and returns one
// piece per child, in source order. A nil child keeps its slot with an
// empty piece. hasLarge is true when the opening tag already spans lines.
func (r *Renderer) resolveChildren(ctx context.Context, tag string, children []*vdom.VNode, rc vdom.RenderContext, svg, hasLarge bool) ([]string, error) {
	if len(children) == 0 {
		return nil, nil
	}

	childSvg := svg
	switch tag {
	case "svg":
		childSvg = true
	case "foreignObject":
		childSvg = false
	}

	pieces := make([]string, len(children))
	g, gctx := errgroup.WithContext(ctx)
	if r.limit > 0 {
		g.SetLimit(r.limit)
	}
	for i, child := range children {
		switch {
		case child == nil:
			continue
		case child.Kind == vdom.KindText:
			pieces[i] = encodeEntities(child.Text)
			continue
		}
		g.Go(func() error {
			html, err := guard(func() (string, error) {
				return r.resolve(gctx, child, rc, true, childSvg)
			})
			if err != nil {
				return err
			}
			pieces[i] = html
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !r.opts.Pretty {
		return pieces, nil
	}
	if !hasLarge {
		for _, p := range pieces {
			if isLargeString(p) {
				hasLarge = true
				break
			}
		}
	}
	if hasLarge {
		unit := r.opts.indentUnit()
		for i, p := range pieces {
			pieces[i] = "\n" + unit + indent(p, unit)
		}
	}
	return pieces, nil
}
