// Package vdom provides the virtual DOM model rendered by the ssr packages.
//
// A tree is made of three kinds of VNode: text nodes, host elements (a plain
// tag such as "div") and component nodes whose Comp field references a
// component definition. Component definitions come in two shapes:
//
//   - *FuncComponent wraps a RenderFunc called with (props, context).
//   - *ClassComponent wraps a constructor returning an Instance with a
//     Render(props, state, context) method and optional lifecycle hooks.
//
// # Building Trees
//
// Elements are created with variadic factory functions, exactly like
// hyperscript:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    C(UserCard, PropsOf("id", 42)),
//	)
//
// Props keep insertion order. Setting a key that already exists replaces the
// value in place, so spreading props and then overriding a key keeps the
// original attribute position.
//
// # Context
//
// RenderContext values flow down the tree. A component that implements
// ChildContextProvider contributes entries to a copy of the context which is
// only visible to its own descendants.
package vdom
