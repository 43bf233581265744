package vdom

import (
	"reflect"
	"testing"
)

func TestHArguments(t *testing.T) {
	var nilNode *VNode
	node := Div(
		nil,
		ID("main"),
		[]Attr{Class("a"), {}},
		PropsOf("data-x", 1),
		"text",
		42,
		3.5,
		nilNode,
		[]*VNode{Span(), nil},
		Func(Greeting),
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("node = %+v", node)
	}
	if got := node.Props.Keys(); !reflect.DeepEqual(got, []string{"id", "class", "data-x"}) {
		t.Errorf("Keys() = %v", got)
	}

	kinds := make([]VKind, len(node.Children))
	for i, c := range node.Children {
		kinds[i] = c.Kind
	}
	want := []VKind{KindText, KindText, KindText, KindElement, KindComponent}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("child kinds = %v, want %v", kinds, want)
	}
	if node.Children[1].Text != "42" || node.Children[2].Text != "3.5" {
		t.Errorf("numeric children = %q, %q", node.Children[1].Text, node.Children[2].Text)
	}
}

func TestHSpreadChildren(t *testing.T) {
	spread := PropsOf("id", "x", ChildrenKey, []*VNode{Text("from props")})

	node := Div(spread)
	if len(node.Children) != 1 || node.Children[0].Text != "from props" {
		t.Errorf("spread children not used: %#v", node.Children)
	}
	if node.Props.Has(ChildrenKey) {
		t.Error("children kept as an attribute")
	}

	explicit := Div(spread, "explicit")
	if len(explicit.Children) != 1 || explicit.Children[0].Text != "explicit" {
		t.Errorf("explicit children should win: %#v", explicit.Children)
	}
}

func TestCBuildsComponentNode(t *testing.T) {
	comp := Func(Greeting)
	node := C(comp, Prop("name", "ann"), "child")

	if !node.IsComponent() || node.Comp != comp {
		t.Fatalf("node = %+v", node)
	}
	if node.Props.String("name") != "ann" || len(node.Children) != 1 {
		t.Errorf("props %v children %v", node.Props, node.Children)
	}
	var nilNode *VNode
	if nilNode.IsComponent() {
		t.Error("nil node reported as component")
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"br", "input", "img", "wbr", "meta"} {
		if !IsVoidElement(tag) {
			t.Errorf("%s should be void", tag)
		}
	}
	for _, tag := range []string{"div", "span", "svg", "image"} {
		if IsVoidElement(tag) {
			t.Errorf("%s should not be void", tag)
		}
	}
}

func TestVKindString(t *testing.T) {
	tests := map[VKind]string{
		KindText:      "Text",
		KindElement:   "Element",
		KindComponent: "Component",
		VKind(42):     "Unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("VKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
