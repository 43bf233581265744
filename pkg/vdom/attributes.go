package vdom

import (
	"fmt"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Prop creates an arbitrary attribute or prop.
func Prop(key string, value any) Attr { return attr(key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// ClassName sets the className prop, rendered as class unless a truthy
// class attribute is also present.
func ClassName(classes ...string) Attr { return attr("className", strings.Join(classes, " ")) }

// ClassMap sets an object-valued class: keys whose value is truthy are
// joined with spaces at render time, in insertion order.
func ClassMap(kv ...any) Attr { return attr("class", PropsOf(kv...)) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// StyleMap sets an object-valued style from alternating property/value
// arguments. Properties may be camelCase; numbers get a px suffix unless
// the property is unitless.
func StyleMap(kv ...any) Attr { return attr("style", PropsOf(kv...)) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// Links and media

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// XlinkHref sets the SVG xlink:href attribute. It is written xlinkHref and
// normalized while rendering inside <svg>.
func XlinkHref(url string) Attr { return attr("xlinkHref", url) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", h) }

// Forms

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value any) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// Checked sets the checked attribute.
func Checked() Attr { return attr("checked", true) }

// Required sets the required attribute.
func Required() Attr { return attr("required", true) }

// For sets the for attribute (for labels).
func For(id string) Attr { return attr("for", id) }

// Meta attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// Framework props

// Key creates a key attribute. It is not rendered unless all attributes are
// requested.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

// Ref creates a ref attribute. It is not rendered unless all attributes are
// requested.
func Ref(ref any) Attr { return attr("ref", ref) }

// InnerHTMLKey is the prop carrying raw inner HTML.
const InnerHTMLKey = "dangerouslySetInnerHTML"

// RawHTML is the value of the dangerouslySetInnerHTML prop.
type RawHTML struct {
	HTML string
}

// DangerouslySetInnerHTML sets the raw inner HTML of an element. The markup
// replaces the element children and is not escaped. Only use it with
// trusted content.
func DangerouslySetInnerHTML(html string) Attr {
	return attr(InnerHTMLKey, RawHTML{HTML: html})
}

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}
