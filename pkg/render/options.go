package render

import "github.com/vango-dev/ssr/pkg/vdom"

// defaultIndent is the pretty-print indent unit when none is set.
const defaultIndent = "\t"

// AttributeHook takes over serialization of one attribute. When ok is true,
// out is written verbatim into the tag (it should carry its own leading
// space) and default handling is skipped, even when out is empty.
type AttributeHook func(name string, value any, rc vdom.RenderContext, opts *Options, isComponent bool) (out string, ok bool)

// Options controls the output of a render. Options are read-only for the
// duration of a render.
type Options struct {
	// Pretty indents multi-line subtrees.
	Pretty bool

	// Indent is the indent unit in pretty mode. Defaults to a tab.
	Indent string

	// Shallow renders nested components as empty placeholder tags named
	// after the component instead of expanding them.
	Shallow bool

	// ShallowRoot also renders the root component as a placeholder when
	// Shallow is set.
	ShallowRoot bool

	// ExpandHighOrder renders the component returned directly by another
	// component even in Shallow mode. Placeholders resume one level below.
	ExpandHighOrder bool

	// SortAttributes writes attributes in lexicographic order instead of
	// insertion order.
	SortAttributes bool

	// XML self-closes elements without children and writes boolean
	// attributes as name="name".
	XML bool

	// AllAttributes keeps the framework key and ref props in the output.
	AllAttributes bool

	// JSX always writes a closing tag, void elements included.
	JSX bool

	// AttributeHook, when set, is consulted for every attribute.
	AttributeHook AttributeHook
}

func (o *Options) indentUnit() string {
	if o.Indent != "" {
		return o.Indent
	}
	return defaultIndent
}
