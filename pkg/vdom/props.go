package vdom

// ChildrenKey is the prop under which a component receives its children.
const ChildrenKey = "children"

// Props is an ordered attribute list. Keys are unique; Set on an existing
// key replaces its value without moving it.
type Props []Attr

// PropsOf builds Props from alternating key/value arguments.
// Non-string keys and a trailing key without a value are ignored.
func PropsOf(kv ...any) Props {
	p := make(Props, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok || key == "" {
			continue
		}
		p.Set(key, kv[i+1])
	}
	return p
}

func (p Props) index(key string) int {
	for i := range p {
		if p[i].Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key.
func (p Props) Get(key string) (any, bool) {
	if i := p.index(key); i >= 0 {
		return p[i].Value, true
	}
	return nil, false
}

// Value returns the value stored under key, or nil.
func (p Props) Value(key string) any {
	v, _ := p.Get(key)
	return v
}

// String returns the value under key when it is a string.
func (p Props) String(key string) string {
	s, _ := p.Value(key).(string)
	return s
}

// Has reports whether key is present.
func (p Props) Has(key string) bool {
	return p.index(key) >= 0
}

// Set stores value under key, in place when the key already exists.
func (p *Props) Set(key string, value any) {
	if i := p.index(key); i >= 0 {
		(*p)[i].Value = value
		return
	}
	*p = append(*p, Attr{Key: key, Value: value})
}

// Delete removes key, keeping the order of the remaining entries.
func (p *Props) Delete(key string) {
	i := p.index(key)
	if i < 0 {
		return
	}
	*p = append((*p)[:i], (*p)[i+1:]...)
}

// Keys returns the keys in insertion order.
func (p Props) Keys() []string {
	keys := make([]string, len(p))
	for i := range p {
		keys[i] = p[i].Key
	}
	return keys
}

// Clone returns a shallow copy.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	copy(out, p)
	return out
}

// Merge returns a copy of p with every entry of other set on top of it.
// Neither p nor other is modified.
func (p Props) Merge(other Props) Props {
	out := make(Props, len(p), len(p)+len(other))
	copy(out, p)
	for _, a := range other {
		out.Set(a.Key, a.Value)
	}
	return out
}

// Without returns a copy of p without the given keys.
func (p Props) Without(keys ...string) Props {
	out := make(Props, 0, len(p))
outer:
	for _, a := range p {
		for _, k := range keys {
			if a.Key == k {
				continue outer
			}
		}
		out = append(out, a)
	}
	return out
}

// Children returns the children stored under ChildrenKey.
func (p Props) Children() []*VNode {
	children, _ := p.Value(ChildrenKey).([]*VNode)
	return children
}

// RenderContext is the context mapping passed down the tree.
// It is never mutated once handed to a component; Extend derives a new one.
type RenderContext map[string]any

// Extend returns a new context holding every entry of c overlaid with extra.
func (c RenderContext) Extend(extra RenderContext) RenderContext {
	out := make(RenderContext, len(c)+len(extra))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Value returns the entry stored under key, or nil.
func (c RenderContext) Value(key string) any {
	return c[key]
}

// State is the component-local state handed to class component Render.
type State map[string]any
