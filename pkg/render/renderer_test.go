package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/ssr/pkg/vdom"
)

func TestRenderBasicMarkup(t *testing.T) {
	runRenderCases(t, []renderCase{
		{
			name: "element with text",
			node: vdom.Div(vdom.Class("foo"), "bar"),
			want: `<div class="foo">bar</div>`,
		},
		{
			name: "falsey attributes omitted",
			node: vdom.Div(vdom.Prop("a", nil), vdom.Prop("b", false)),
			want: `<div></div>`,
		},
		{
			name: "zero attribute kept",
			node: vdom.Div(vdom.Prop("foo", 0)),
			want: `<div foo="0"></div>`,
		},
		{
			name: "collapsible attributes",
			node: vdom.Div(vdom.Class(""), vdom.StyleAttr(""), vdom.Prop("foo", true), vdom.Prop("bar", true)),
			want: `<div class style foo bar></div>`,
		},
		{
			name: "function attributes omitted",
			node: vdom.Div(vdom.Prop("a", func() {}), vdom.Prop("b", func(int) string { return "" })),
			want: `<div></div>`,
		},
		{
			name: "entities encoded",
			node: vdom.Div(vdom.Prop("a", `"<>&`), `"<>&`),
			want: `<div a="&quot;&lt;&gt;&amp;">&quot;&lt;&gt;&amp;</div>`,
		},
		{
			name: "numeric attribute",
			node: vdom.Td(vdom.Prop("colspan", 2), vdom.Prop("data-ratio", 0.25)),
			want: `<td colspan="2" data-ratio="0.25"></td>`,
		},
		{
			name: "void elements self-close",
			node: vdom.Div(vdom.Input(vdom.Type("text")), vdom.Wbr()),
			want: `<div><input type="text" /><wbr /></div>`,
		},
		{
			name: "void element never closes",
			node: vdom.Input(vdom.P("Hello World")),
			want: `<input /><p>Hello World</p>`,
		},
		{
			name: "object style",
			node: vdom.Div(vdom.StyleMap("color", "red", "border", "none")),
			want: `<div style="color: red; border: none;"></div>`,
		},
		{
			name: "empty object style",
			node: vdom.Div(vdom.StyleMap()),
			want: `<div></div>`,
		},
		{
			name: "map style in key order",
			node: vdom.Div(vdom.Prop("style", map[string]any{"marginTop": 4, "color": "red"})),
			want: `<div style="color: red; margin-top: 4px;"></div>`,
		},
	})
}

func TestRenderTextNode(t *testing.T) {
	for _, text := range []string{"plain", `a < b && c > "d"`, "", "ünïcødé"} {
		if got, want := mustRender(t, vdom.Text(text), Options{}), encodeEntities(text); got != want {
			t.Errorf("Text(%q) = %q, want %q", text, got, want)
		}
	}
	if got := mustRender(t, vdom.TextOf(42), Options{}); got != "42" {
		t.Errorf("TextOf(42) = %q", got)
	}
}

func TestRenderNilNode(t *testing.T) {
	if got := mustRender(t, nil, Options{}); got != "" {
		t.Errorf("nil node rendered %q", got)
	}
}

func TestRenderNilChildrenKeepSlots(t *testing.T) {
	node := &vdom.VNode{
		Kind: vdom.KindElement,
		Tag:  "div",
		Children: []*vdom.VNode{
			nil, vdom.Text("|"), nil, vdom.Text("|"), nil,
		},
	}
	if got := mustRender(t, node, Options{}); got != `<div>||</div>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderSVG(t *testing.T) {
	node := vdom.Svg(
		vdom.Image(vdom.XlinkHref("#")),
		vdom.ForeignObject(
			vdom.Div(vdom.XlinkHref("#")),
		),
		vdom.G(
			vdom.Image(vdom.XlinkHref("#")),
		),
	)
	want := `<svg><image xlink:href="#"></image><foreignObject><div xlinkHref="#"></div></foreignObject><g><image xlink:href="#"></image></g></svg>`
	if got := mustRender(t, node, Options{}); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDangerouslySetInnerHTML(t *testing.T) {
	html := `<a href="foo">asdf</a> some text <ul><li>foo<li>bar</ul>`

	runRenderCases(t, []renderCase{
		{
			name: "raw markup",
			node: vdom.Div(vdom.ID("f"), vdom.DangerouslySetInnerHTML(html)),
			want: `<div id="f">` + html + `</div>`,
		},
		{
			name: "overrides children",
			node: vdom.Div(vdom.DangerouslySetInnerHTML("foo"), vdom.B("bar")),
			want: `<div>foo</div>`,
		},
		{
			name: "object form",
			node: vdom.Div(vdom.Prop(vdom.InnerHTMLKey, map[string]any{"__html": "<i>x</i>"})),
			want: `<div><i>x</i></div>`,
		},
		{
			name: "pretty indents large markup",
			node: vdom.Div(vdom.DangerouslySetInnerHTML("<b>x</b>")),
			opts: Options{Pretty: true},
			want: "<div>\n\t<b>x</b>\n</div>",
		},
	})
}

func TestRenderClassMassaging(t *testing.T) {
	runRenderCases(t, []renderCase{
		{
			name: "className",
			node: vdom.Div(vdom.ClassName("foo bar")),
			want: `<div class="foo bar"></div>`,
		},
		{
			name: "class",
			node: vdom.Div(vdom.Class("foo bar")),
			want: `<div class="foo bar"></div>`,
		},
		{
			name: "class wins over className",
			node: vdom.Div(vdom.Class("foo"), vdom.ClassName("foo bar")),
			want: `<div class="foo"></div>`,
		},
		{
			name: "className before class",
			node: vdom.Div(vdom.ClassName("foo bar"), vdom.Class("foo")),
			want: `<div class="foo"></div>`,
		},
		{
			name: "nil class falls back to className",
			node: vdom.Div(vdom.Prop("class", nil), vdom.ClassName("foo")),
			want: `<div class="foo"></div>`,
		},
		{
			name: "object class",
			node: vdom.Div(vdom.ClassMap("foo", 1, "bar", 0, "baz", true, "buzz", false)),
			want: `<div class="foo baz"></div>`,
		},
		{
			name: "object className",
			node: vdom.Div(vdom.Prop("className", vdom.PropsOf("foo", 1, "bar", 0, "baz", true, "buzz", false))),
			want: `<div class="foo baz"></div>`,
		},
	})
}

func TestRenderSortAttributes(t *testing.T) {
	node := vdom.Div(vdom.Prop("b1", "b1"), vdom.Prop("c", "c"), vdom.Prop("a", "a"), vdom.Prop("b", "b"))

	runRenderCases(t, []renderCase{
		{
			name: "insertion order by default",
			node: node,
			want: `<div b1="b1" c="c" a="a" b="b"></div>`,
		},
		{
			name: "lexicographic when enabled",
			node: node,
			opts: Options{SortAttributes: true},
			want: `<div a="a" b="b" b1="b1" c="c"></div>`,
		},
	})

	// Sorting must not reorder the node itself.
	if got := node.Props.Keys(); strings.Join(got, ",") != "b1,c,a,b" {
		t.Errorf("props reordered: %v", got)
	}
}

func TestRenderXML(t *testing.T) {
	xml := Options{XML: true}

	runRenderCases(t, []renderCase{
		{name: "empty div", node: vdom.Div(), opts: xml, want: `<div />`},
		{name: "empty a", node: vdom.A(), opts: xml, want: `<a />`},
		{name: "a with text", node: vdom.A("b"), opts: xml, want: `<a>b</a>`},
		{name: "void", node: vdom.Br(), opts: xml, want: `<br />`},
		{
			name: "boolean attributes",
			node: vdom.Div(vdom.Prop("foo", true), vdom.Prop("bar", true)),
			opts: xml,
			want: `<div foo="foo" bar="bar" />`,
		},
		{
			name: "falsey attributes",
			node: vdom.Div(vdom.Prop("foo", false), vdom.Prop("bar", 0)),
			opts: xml,
			want: `<div bar="0" />`,
		},
	})
}

func TestRenderJSXClosesVoidElements(t *testing.T) {
	if got := mustRender(t, vdom.Input(), Options{JSX: true}); got != `<input /></input>` {
		t.Errorf("got %q", got)
	}
	if got := mustRender(t, vdom.Input(), Options{}); got != `<input />` {
		t.Errorf("got %q", got)
	}
}

func TestRenderReservedAttributes(t *testing.T) {
	node := vdom.Div(vdom.Key("k"), vdom.Ref("r"), vdom.ID("x"))

	runRenderCases(t, []renderCase{
		{name: "skipped by default", node: node, want: `<div id="x"></div>`},
		{
			name: "kept with AllAttributes",
			node: node,
			opts: Options{AllAttributes: true},
			want: `<div key="k" ref="r" id="x"></div>`,
		},
	})
}

func TestRenderAttributeHook(t *testing.T) {
	var sawComponent bool
	hook := func(name string, value any, rc vdom.RenderContext, opts *Options, isComponent bool) (string, bool) {
		if isComponent {
			sawComponent = true
		}
		switch name {
		case "x":
			return ` data-x="` + vdom.FormatValue(value) + `"`, true
		case "secret":
			return "", true
		}
		return "", false
	}

	got := mustRender(t, vdom.Div(vdom.Prop("x", 5), vdom.Prop("secret", "s"), vdom.ID("a")), Options{AttributeHook: hook})
	if want := `<div data-x="5" id="a"></div>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if sawComponent {
		t.Error("host element reported as component")
	}
}

func TestRenderAttributeHookPanic(t *testing.T) {
	hook := func(name string, _ any, _ vdom.RenderContext, _ *Options, _ bool) (string, bool) {
		if name == "boom" {
			panic("hook failed")
		}
		return "", false
	}

	tests := []struct {
		name string
		node *vdom.VNode
	}{
		{"root element", vdom.Div(vdom.Prop("boom", true))},
		{"nested element", vdom.Div(vdom.Span(vdom.Prop("boom", true)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestRenderer(Options{AttributeHook: hook}).RenderToString(context.Background(), tt.node, nil)
			var pe *PanicError
			if !errors.As(err, &pe) {
				t.Fatalf("expected PanicError, got %v", err)
			}
			if pe.Value != "hook failed" {
				t.Errorf("panic value = %v, want %q", pe.Value, "hook failed")
			}
		})
	}
}

func TestRenderHookSeesNormalizedClass(t *testing.T) {
	var seen any
	hook := func(name string, value any, _ vdom.RenderContext, _ *Options, _ bool) (string, bool) {
		if name == "class" {
			seen = value
		}
		return "", false
	}
	mustRender(t, vdom.Div(vdom.ClassMap("a", true, "b", false)), Options{AttributeHook: hook})
	if seen != "a" {
		t.Errorf("hook saw %v, want normalized class string", seen)
	}
}

func TestRenderPretty(t *testing.T) {
	runRenderCases(t, []renderCase{
		{
			name: "short text stays inline",
			node: vdom.Div("hello"),
			opts: Options{Pretty: true},
			want: `<div>hello</div>`,
		},
		{
			name: "markup children indented",
			node: vdom.Div(vdom.Span("a")),
			opts: Options{Pretty: true},
			want: "<div>\n\t<span>a</span>\n</div>",
		},
		{
			name: "custom indent nests",
			node: vdom.Div(vdom.Div(vdom.P("x"))),
			opts: Options{Pretty: true, Indent: "  "},
			want: "<div>\n  <div>\n    <p>x</p>\n  </div>\n</div>",
		},
		{
			name: "no indentation without pretty",
			node: vdom.Div(vdom.Div(vdom.P("x"))),
			want: "<div><div><p>x</p></div></div>",
		},
	})
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := newTestRenderer(Options{}).RenderToString(context.Background(), &vdom.VNode{Kind: vdom.VKind(99)}, nil)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestRenderComponentNodeWithoutComp(t *testing.T) {
	_, err := newTestRenderer(Options{}).RenderToString(context.Background(), &vdom.VNode{Kind: vdom.KindComponent}, nil)
	if !errors.Is(err, ErrUnknownComponent) {
		t.Fatalf("expected ErrUnknownComponent, got %v", err)
	}
}

func TestRenderToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := newTestRenderer(Options{}).RenderToWriter(context.Background(), &buf, vdom.P("hi"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "<p>hi</p>" {
		t.Errorf("got %q", buf.String())
	}
}

func TestPackageRenderToString(t *testing.T) {
	html, err := RenderToString(context.Background(), vdom.Div(vdom.Prop("b", 1), vdom.Prop("a", 2)), nil, Options{SortAttributes: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div a="2" b="1"></div>` {
		t.Errorf("got %q", html)
	}
}
