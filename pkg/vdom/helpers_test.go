package vdom

import (
	"math"
	"testing"
	"time"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{true, "true"},
		{0, "0"},
		{int64(-7), "-7"},
		{uint(7), "7"},
		{1.0, "1"},
		{0.1, "0.1"},
		{float32(2.5), "2.5"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{time.Second, "1s"},
		{[]int{1}, "[1]"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConditionalHelpers(t *testing.T) {
	a, b := Text("a"), Text("b")

	if If(true, a) != a || If(false, a) != nil {
		t.Error("If mismatch")
	}
	if IfElse(true, a, b) != a || IfElse(false, a, b) != b {
		t.Error("IfElse mismatch")
	}

	called := false
	When(false, func() *VNode { called = true; return a })
	if called {
		t.Error("When evaluated a false branch")
	}
	if When(true, func() *VNode { return b }) != b {
		t.Error("When mismatch")
	}
}

func TestRange(t *testing.T) {
	nodes := Range([]string{"x", "", "z"}, func(s string, i int) *VNode {
		if s == "" {
			return nil
		}
		return Li(Textf("%d:%s", i, s))
	})
	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if got := nodes[1].Children[0].Text; got != "2:z" {
		t.Errorf("second item = %q", got)
	}
}

func TestAttributeHelpers(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		key  string
		want any
	}{
		{"class joins", Class("a", "b"), "class", "a b"},
		{"className", ClassName("a"), "className", "a"},
		{"data", Data("id", "7"), "data-id", "7"},
		{"aria", AriaLabel("close"), "aria-label", "close"},
		{"xlink", XlinkHref("#i"), "xlinkHref", "#i"},
		{"key", Key(3), "key", "3"},
		{"disabled", Disabled(), "disabled", true},
		{"inner html", DangerouslySetInnerHTML("<b>"), InnerHTMLKey, RawHTML{HTML: "<b>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key || tt.attr.Value != tt.want {
				t.Errorf("got %s=%#v, want %s=%#v", tt.attr.Key, tt.attr.Value, tt.key, tt.want)
			}
		})
	}

	if !ClassIf(false, "x").IsEmpty() || ClassIf(true, "x").IsEmpty() {
		t.Error("ClassIf mismatch")
	}
	if !AttrIf(false, ID("x")).IsEmpty() {
		t.Error("AttrIf mismatch")
	}
	if style := StyleMap("color", "red").Value.(Props); style.String("color") != "red" {
		t.Errorf("StyleMap = %v", style)
	}
}
