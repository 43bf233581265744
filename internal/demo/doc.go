// Package demo is a small blog rendered with pkg/render. It exercises the
// pieces a real site needs: a shared layout, a theme handed down through
// child context, and components that load their data asynchronously in
// ComponentWillMount.
//
// The data lives in a Store. MemoryStore serves a fixed set of posts and
// can be given a latency to make the asynchronous loading visible.
package demo
