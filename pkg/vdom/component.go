package vdom

import (
	"context"
	"reflect"
	"runtime"
	"strings"
)

// Component is a reference to a component definition.
// It is implemented by *FuncComponent and *ClassComponent only; renderers
// switch on the concrete type. Identity is pointer identity.
type Component interface {
	// Defaults returns the props applied when a key is missing.
	Defaults() Props

	sealed()
}

// RenderFunc renders a function component.
type RenderFunc func(props Props, rc RenderContext) *VNode

// FuncComponent is a stateless component backed by a RenderFunc.
type FuncComponent struct {
	Render       RenderFunc
	Name         string // declared name, empty for anonymous functions
	DisplayName  string // explicit name, preferred over Name
	DefaultProps Props
}

// Func creates a function component. The declared name is taken from the
// function symbol; closures are anonymous.
func Func(render RenderFunc) *FuncComponent {
	return &FuncComponent{Render: render, Name: funcName(render)}
}

// Named sets the display name and returns f.
func (f *FuncComponent) Named(name string) *FuncComponent {
	f.DisplayName = name
	return f
}

// WithDefaults sets the default props and returns f.
func (f *FuncComponent) WithDefaults(defaults Props) *FuncComponent {
	f.DefaultProps = defaults
	return f
}

// Defaults implements Component.
func (f *FuncComponent) Defaults() Props { return f.DefaultProps }

func (f *FuncComponent) sealed() {}

// Instance is a live class component.
type Instance interface {
	Render(props Props, state State, rc RenderContext) *VNode
}

// WillMounter is implemented by instances that prepare data before their
// first render. Returned props that are non-empty are merged over the
// instance props, new values winning. The call may block, e.g. on a
// database query; it should honor ctx.
type WillMounter interface {
	ComponentWillMount(ctx context.Context) (Props, error)
}

// ChildContextProvider is implemented by instances that add context
// entries for their descendants.
type ChildContextProvider interface {
	GetChildContext() RenderContext
}

// Binder receives the resolved props and context before any hook runs.
type Binder interface {
	Bind(props Props, rc RenderContext)
}

// Stateful exposes instance state to the renderer.
type Stateful interface {
	CurrentState() State
}

// Base can be embedded in instances to receive props, context and state.
type Base struct {
	Props   Props
	Context RenderContext
	State   State
}

// Bind implements Binder.
func (b *Base) Bind(props Props, rc RenderContext) {
	b.Props = props
	b.Context = rc
}

// CurrentState implements Stateful.
func (b *Base) CurrentState() State {
	return b.State
}

// ClassComponent is a component whose instances carry lifecycle hooks.
type ClassComponent struct {
	New          func(props Props, rc RenderContext) Instance
	Name         string
	DisplayName  string
	DefaultProps Props

	// typeName is the name of the type holding the Render method.
	typeName string
}

// NewClass creates a class component from a typed constructor. The instance
// type name serves as the component name when none is set.
func NewClass[T Instance](newFn func(props Props, rc RenderContext) T) *ClassComponent {
	return &ClassComponent{
		New: func(props Props, rc RenderContext) Instance {
			inst := newFn(props, rc)
			if v := reflect.ValueOf(inst); !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
				return nil
			}
			return inst
		},
		typeName: typeName(reflect.TypeFor[T]()),
	}
}

// Named sets the display name and returns c.
func (c *ClassComponent) Named(name string) *ClassComponent {
	c.DisplayName = name
	return c
}

// WithDefaults sets the default props and returns c.
func (c *ClassComponent) WithDefaults(defaults Props) *ClassComponent {
	c.DefaultProps = defaults
	return c
}

// TypeName returns the name of the instance type, if known.
func (c *ClassComponent) TypeName() string { return c.typeName }

// Defaults implements Component.
func (c *ClassComponent) Defaults() Props { return c.DefaultProps }

func (c *ClassComponent) sealed() {}

// NodeProps returns the fully resolved props for a component node: the
// component defaults, overlaid with the node attributes, plus the node
// children under ChildrenKey. The result is always a fresh Props value.
func NodeProps(v *VNode) Props {
	var defaults Props
	if v.Comp != nil {
		defaults = v.Comp.Defaults()
	}
	props := make(Props, 0, len(defaults)+len(v.Props)+1)
	props = append(props, defaults...)
	for _, a := range v.Props {
		if a.Value == nil && defaults.Has(a.Key) {
			continue
		}
		props.Set(a.Key, a.Value)
	}
	children := v.Children
	if children == nil {
		children = []*VNode{}
	}
	props.Set(ChildrenKey, children)
	return props
}

func funcName(fn any) string {
	rf := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if rf == nil {
		return ""
	}
	name := rf.Name()
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	// Closures are named func1, func2.1 and so on.
	if name == "" || strings.HasPrefix(name, "func") || strings.Trim(name, "0123456789") == "" {
		return ""
	}
	return name
}

func typeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
