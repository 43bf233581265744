// Package render provides asynchronous server-side rendering (SSR) of
// vdom trees to HTML.
//
// Rendering is a recursive walk. Host elements are serialized directly,
// component nodes are invoked and their output is walked in turn. A class
// component may implement vdom.WillMounter to load data before its first
// render; the walk waits for it, so pages that query a database or call an
// API during setup are fully resolved before any markup is returned.
//
// The children of an element are resolved concurrently, one goroutine per
// child, and joined in source order. The output never depends on which
// sibling finishes first. The first failing subtree cancels its siblings
// and its error is returned unchanged.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(ctx, node, nil)
//
// # Options
//
// Options mirror the classic render-to-string switches: Pretty output,
// Shallow rendering with component placeholders, SortAttributes for
// snapshot tests, XML self-closing, and an AttributeHook to take over
// serialization of individual attributes.
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(ctx, w, render.PageData{
//	    Title: "Dashboard",
//	    Body:  vdom.C(Dashboard),
//	})
//
// StreamingRenderer flushes the document head before the body is resolved,
// so browsers start fetching assets while slow components are loading.
//
// # Security
//
// Text and attribute values are entity-escaped. dangerouslySetInnerHTML is
// written verbatim and must only carry trusted markup.
package render
