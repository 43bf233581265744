package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// H creates a host element node, hyperscript style.
// Arguments can be: nil, Attr, []Attr, Props, *VNode, []*VNode, string,
// numbers (text children) and Component (a child component node).
//
// A "children" entry in spread Props becomes the element children when no
// explicit children are passed; it is never kept as an attribute.
func H(tag string, args ...any) *VNode {
	return build(&VNode{Kind: KindElement, Tag: tag}, args)
}

// C creates a component node for comp. Arguments follow the rules of H.
func C(comp Component, args ...any) *VNode {
	return build(&VNode{Kind: KindComponent, Comp: comp}, args)
}

func build(node *VNode, args []any) *VNode {
	var spread []*VNode
	hasSpread := false

	setAttr := func(a Attr) {
		if a.Key == "" {
			return
		}
		if a.Key == ChildrenKey {
			spread, _ = a.Value.([]*VNode)
			hasSpread = true
			return
		}
		node.Props.Set(a.Key, a.Value)
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue
		case Attr:
			setAttr(v)
		case []Attr:
			for _, a := range v {
				setAttr(a)
			}
		case Props:
			for _, a := range v {
				setAttr(a)
			}
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}
		case Component:
			node.Children = append(node.Children, C(v))
		case string:
			node.Children = append(node.Children, Text(v))
		case int, int64, float64:
			node.Children = append(node.Children, TextOf(v))
		}
	}

	if hasSpread && len(node.Children) == 0 {
		node.Children = append(node.Children, spread...)
	}
	return node
}

// Document structure elements

func Html(args ...any) *VNode  { return H("html", args...) }
func Head(args ...any) *VNode  { return H("head", args...) }
func Body(args ...any) *VNode  { return H("body", args...) }
func Title(args ...any) *VNode { return H("title", args...) }
func Meta(args ...any) *VNode  { return H("meta", args...) }
func Link(args ...any) *VNode  { return H("link", args...) }

// Sectioning and text content

func Header(args ...any) *VNode  { return H("header", args...) }
func Footer(args ...any) *VNode  { return H("footer", args...) }
func Main(args ...any) *VNode    { return H("main", args...) }
func Nav(args ...any) *VNode     { return H("nav", args...) }
func Section(args ...any) *VNode { return H("section", args...) }
func Article(args ...any) *VNode { return H("article", args...) }
func Aside(args ...any) *VNode   { return H("aside", args...) }
func H1(args ...any) *VNode      { return H("h1", args...) }
func H2(args ...any) *VNode      { return H("h2", args...) }
func H3(args ...any) *VNode      { return H("h3", args...) }
func Div(args ...any) *VNode     { return H("div", args...) }
func P(args ...any) *VNode       { return H("p", args...) }
func Span(args ...any) *VNode    { return H("span", args...) }
func Pre(args ...any) *VNode     { return H("pre", args...) }
func Ul(args ...any) *VNode      { return H("ul", args...) }
func Ol(args ...any) *VNode      { return H("ol", args...) }
func Li(args ...any) *VNode      { return H("li", args...) }
func Hr(args ...any) *VNode      { return H("hr", args...) }

// Inline text semantics

func A(args ...any) *VNode      { return H("a", args...) }
func Strong(args ...any) *VNode { return H("strong", args...) }
func Em(args ...any) *VNode     { return H("em", args...) }
func B(args ...any) *VNode      { return H("b", args...) }
func Code(args ...any) *VNode   { return H("code", args...) }
func Br(args ...any) *VNode     { return H("br", args...) }
func Wbr(args ...any) *VNode    { return H("wbr", args...) }

// Forms

func Form(args ...any) *VNode     { return H("form", args...) }
func Input(args ...any) *VNode    { return H("input", args...) }
func Textarea(args ...any) *VNode { return H("textarea", args...) }
func Button(args ...any) *VNode   { return H("button", args...) }
func Label(args ...any) *VNode    { return H("label", args...) }

// Tables

func Table(args ...any) *VNode { return H("table", args...) }
func Tr(args ...any) *VNode    { return H("tr", args...) }
func Th(args ...any) *VNode    { return H("th", args...) }
func Td(args ...any) *VNode    { return H("td", args...) }

// Media and SVG

func Img(args ...any) *VNode           { return H("img", args...) }
func Svg(args ...any) *VNode           { return H("svg", args...) }
func G(args ...any) *VNode             { return H("g", args...) }
func Image(args ...any) *VNode         { return H("image", args...) }
func Use(args ...any) *VNode           { return H("use", args...) }
func ForeignObject(args ...any) *VNode { return H("foreignObject", args...) }

// Scripting

func Script(args ...any) *VNode { return H("script", args...) }
func Style(args ...any) *VNode  { return H("style", args...) }
