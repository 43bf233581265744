package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/ssr/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	greeting := vdom.Func(func(_ vdom.Props, rc vdom.RenderContext) *vdom.VNode {
		return vdom.H1("Hello, ", rc.Value("user").(string))
	})

	page := PageData{
		Body:    vdom.Main(vdom.C(greeting)),
		Context: vdom.RenderContext{"user": "Ann"},
		Title:   "Home & Away",
		Lang:    "de",
		Meta: []MetaTag{
			{Name: "description", Content: "A <test> page"},
			{Property: "og:title", Content: "Home"},
		},
		Links:       []LinkTag{{Rel: "icon", Href: "/favicon.ico"}},
		StyleSheets: []string{"/app.css"},
		Styles:      []string{"body{margin:0}"},
		Scripts: []ScriptTag{
			{Src: "/head.js", Defer: true},
			{Src: "/app.js", Module: true},
			{Inline: "window.ready = true"},
		},
	}

	var buf bytes.Buffer
	if err := newTestRenderer(Options{}).RenderPage(context.Background(), &buf, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>\n",
		`<html lang="de">`,
		`<meta charset="utf-8">`,
		"<title>Home &amp; Away</title>",
		`<meta name="description" content="A &lt;test&gt; page">`,
		`<meta property="og:title" content="Home">`,
		`<link rel="icon" href="/favicon.ico">`,
		`<link rel="stylesheet" href="/app.css">`,
		"<style>body{margin:0}</style>",
		`<main><h1>Hello, Ann</h1></main>`,
		"</body>\n</html>\n",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q\n%s", want, html)
		}
	}

	head, body, ok := strings.Cut(html, "</head>")
	if !ok {
		t.Fatalf("no head in %q", html)
	}
	if !strings.Contains(head, `<script src="/head.js" defer></script>`) {
		t.Error("deferred script should be in the head")
	}
	if !strings.Contains(body, `<script src="/app.js" type="module"></script>`) {
		t.Error("module script should be at the end of the body")
	}
	if !strings.Contains(body, "<script>window.ready = true</script>") {
		t.Error("inline script should be at the end of the body")
	}
}

func TestRenderPageDefaultLang(t *testing.T) {
	var buf bytes.Buffer
	if err := newTestRenderer(Options{}).RenderPage(context.Background(), &buf, PageData{Body: vdom.Div()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `<html lang="en">`) {
		t.Errorf("default lang missing: %q", buf.String())
	}
	if strings.Contains(buf.String(), "<title>") {
		t.Error("empty title should be omitted")
	}
}

func TestRenderPageFailureWritesNothing(t *testing.T) {
	comp := vdom.NewClass(func(vdom.Props, vdom.RenderContext) *failing { return &failing{err: errBoom} })

	var buf bytes.Buffer
	err := newTestRenderer(Options{}).RenderPage(context.Background(), &buf, PageData{Body: vdom.C(comp)})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q on failure", buf.String())
	}
}

func TestStreamingRenderPage(t *testing.T) {
	fetch := vdom.NewClass(func(vdom.Props, vdom.RenderContext) *fetcher { return &fetcher{} })

	var buf bytes.Buffer
	w := &FlushableWriter{Writer: &buf}
	s := NewStreamingRenderer(w, RendererConfig{Names: NewNameRegistry(), Logger: quietLogger})

	if err := s.RenderPage(context.Background(), PageData{Title: "Stream", Body: vdom.C(fetch)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.FlushCount != 2 {
		t.Errorf("FlushCount = %d, want 2", w.FlushCount)
	}

	html := buf.String()
	if !strings.Contains(html, "<title>Stream</title>") {
		t.Errorf("head missing: %q", html)
	}
	if !strings.Contains(html, `<div foo="bar"></div>`) {
		t.Errorf("body missing: %q", html)
	}
	if !strings.HasSuffix(html, "</html>\n") {
		t.Errorf("document not terminated: %q", html)
	}
}

func TestStreamingRenderPageFailure(t *testing.T) {
	comp := vdom.NewClass(func(vdom.Props, vdom.RenderContext) *failing { return &failing{err: errBoom} })

	var buf bytes.Buffer
	w := &FlushableWriter{Writer: &buf}
	s := NewStreamingRenderer(w, RendererConfig{Names: NewNameRegistry(), Logger: quietLogger})

	err := s.RenderPage(context.Background(), PageData{Body: vdom.C(comp)})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}
	if w.FlushCount != 1 {
		t.Errorf("FlushCount = %d, want 1 (head only)", w.FlushCount)
	}
	if !strings.HasSuffix(buf.String(), "</head>\n") {
		t.Errorf("expected only the head, got %q", buf.String())
	}
}

func TestStreamingRendererWithoutFlusher(t *testing.T) {
	var buf bytes.Buffer
	s := NewStreamingRenderer(&buf, RendererConfig{Names: NewNameRegistry(), Logger: quietLogger})
	if err := s.RenderPage(context.Background(), PageData{Body: vdom.P("ok")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<p>ok</p>") {
		t.Errorf("got %q", buf.String())
	}
}
