package render

import (
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/vango-dev/ssr/pkg/vdom"
)

// openTag serializes the opening tag of an element. It returns the tag and
// the raw inner HTML carried by dangerouslySetInnerHTML, which replaces the
// children when non-empty.
func (r *Renderer) openTag(tag string, props vdom.Props, rc vdom.RenderContext, svg, isComponent bool) (string, string) {
	opts := &r.opts

	attrs := props
	if opts.SortAttributes && len(props) > 1 {
		attrs = props.Clone()
		sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
	}
	hasClass := truthy(props.Value("class"))

	var (
		b    strings.Builder
		html string
	)
	for _, a := range attrs {
		name, v := a.Key, a.Value

		if name == vdom.ChildrenKey {
			continue
		}
		if !opts.AllAttributes && (name == "key" || name == "ref") {
			continue
		}

		if name == "className" {
			if hasClass {
				continue
			}
			name = "class"
		} else if svg {
			name = xlinkName(name)
		}

		if name == "class" {
			if entries, ok := objectEntries(v); ok {
				v = classObjToString(entries)
			}
		} else if name == "style" {
			if entries, ok := objectEntries(v); ok {
				if css := styleObjToCSS(entries); css != "" {
					v = css
				} else {
					v = nil
				}
			}
		}

		if opts.AttributeHook != nil {
			if out, ok := opts.AttributeHook(name, v, rc, opts, isComponent); ok {
				b.WriteString(out)
				continue
			}
		}

		if name == vdom.InnerHTMLKey {
			html = innerHTML(v)
			continue
		}
		if !renderable(v) {
			continue
		}

		if isBareValue(v) {
			// in non-xml mode, allow boolean attributes
			if !opts.XML {
				b.WriteString(" ")
				b.WriteString(name)
				continue
			}
			v = name
		}
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(encodeEntities(vdom.FormatValue(v)))
		b.WriteString(`"`)
	}

	s := collapseAttrLines(b.String())
	if vdom.IsVoidElement(tag) {
		s = "<" + tag + s + " />"
	} else {
		s = "<" + tag + s + ">"
	}

	if html != "" && opts.Pretty && isLargeString(html) {
		unit := opts.indentUnit()
		html = "\n" + unit + indent(html, unit)
	}
	return s, html
}

// collapseAttrLines folds a single leading line break into a space, and
// otherwise terminates a multi-line attribute buffer with a line break.
func collapseAttrLines(s string) string {
	if strings.HasPrefix(s, "\n") {
		sub := " " + strings.TrimLeft(s, " \t\n\r\f\v")
		if !strings.Contains(sub, "\n") {
			return sub
		}
		return s + "\n"
	}
	if strings.Contains(s, "\n") {
		return s + "\n"
	}
	return s
}

// xlinkName normalizes xlinkHref, xlink:href and similar SVG names to the
// canonical xlink: form.
func xlinkName(name string) string {
	if len(name) <= len("xlink") || !strings.EqualFold(name[:len("xlink")], "xlink") {
		return name
	}
	rest := strings.ToLower(name[len("xlink"):])
	if strings.HasPrefix(rest, ":") && len(rest) > 1 {
		rest = rest[1:]
	}
	return "xlink:" + rest
}

func innerHTML(v any) string {
	switch h := v.(type) {
	case vdom.RawHTML:
		return h.HTML
	case *vdom.RawHTML:
		if h != nil {
			return h.HTML
		}
	case string:
		return h
	case vdom.Props:
		s, _ := h.Value("__html").(string)
		return s
	case map[string]any:
		s, _ := h["__html"].(string)
		return s
	case map[string]string:
		return h["__html"]
	}
	return ""
}

// renderable reports whether an attribute value is written at all:
// nil, false, NaN and functions are dropped while 0 and "" are kept.
func renderable(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string, int, int64:
		return true
	case float64:
		return !math.IsNaN(x)
	case float32:
		return !math.IsNaN(float64(x))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return false
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// isBareValue reports whether v renders as a bare attribute name.
func isBareValue(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x == ""
	}
	return false
}
