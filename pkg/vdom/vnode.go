package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindText      VKind = iota // Plain text node
	KindElement                // <div>, <button>, etc.
	KindComponent              // Nested component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindElement:
		return "Element"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
//
// A nil *VNode is a valid, empty node: it renders to nothing but still
// occupies its position among its siblings.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes, or component props for KindComponent
	Children []*VNode  // Child nodes
	Text     string    // For KindText
	Comp     Component // For KindComponent
}

// IsComponent reports whether the node references a component definition.
func (v *VNode) IsComponent() bool {
	return v != nil && v.Kind == KindComponent && v.Comp != nil
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
