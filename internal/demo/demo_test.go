package demo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/ssr/pkg/render"
	"github.com/vango-dev/ssr/pkg/server"
	"github.com/vango-dev/ssr/pkg/vdom"
)

func newRenderer() *render.Renderer {
	return render.NewRenderer(render.RendererConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func renderPage(t *testing.T, page render.PageData) string {
	t.Helper()
	var b strings.Builder
	if err := newRenderer().RenderPage(context.Background(), &b, page); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	return b.String()
}

func TestMemoryStorePostsOrder(t *testing.T) {
	store := NewMemoryStore(SamplePosts()...)
	posts, err := store.Posts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var slugs []string
	for _, p := range posts {
		slugs = append(slugs, p.Slug)
	}
	if got := strings.Join(slugs, ","); got != "escaping,async-components,hello-world" {
		t.Errorf("order = %s", got)
	}
}

func TestMemoryStoreLatencyHonorsContext(t *testing.T) {
	store := NewMemoryStore(SamplePosts()...)
	store.Latency = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := store.Post(ctx, "hello-world"); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Post() error = %v, want deadline exceeded", err)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Post(context.Background(), "nope")
	if !errors.Is(err, ErrPostNotFound) || !errors.Is(err, server.ErrNotFound) {
		t.Errorf("Post() error = %v", err)
	}
}

func TestHomePage(t *testing.T) {
	html := renderPage(t, NewSite().Home(""))

	for _, want := range []string{
		"<title>Home | Vango Blog</title>",
		`<div class="theme-root"><div class="layout" style="background-color: #ffffff; color: #1f2328; min-height: 100vh;">`,
		`<a href="/posts/escaping">Escaping &lt;html&gt; &amp; friends</a>`,
		`<aside class="recent"><h2>Recent</h2><ol><li>Escaping &lt;html&gt; &amp; friends</li><li>Async components</li></ol></aside>`,
		"<p>Theme: light</p>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("home missing %q\n%s", want, html)
		}
	}
}

func TestPostPage(t *testing.T) {
	html := renderPage(t, NewSite().Post("escaping", "dark"))

	for _, want := range []string{
		"<h1>Escaping &lt;html&gt; &amp; friends</h1>",
		"By Ada on March 15, 2024",
		`<ul class="tags"><li class="tag tag-render">render</li><li class="tag">security</li></ul>`,
		"&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;",
		"<p>Theme: dark</p>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("post missing %q\n%s", want, html)
		}
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("post body was not escaped")
	}
}

func TestPostWithoutTags(t *testing.T) {
	store := NewMemoryStore(Post{Slug: "bare", Title: "Bare"})
	site := &Site{Store: store}
	html := renderPage(t, site.Post("bare", ""))
	if strings.Contains(html, `class="tags"`) {
		t.Error("empty tag list rendered")
	}
}

func TestEmptyStore(t *testing.T) {
	site := &Site{Store: NewMemoryStore()}
	html := renderPage(t, site.Home(""))
	if !strings.Contains(html, `<p class="empty">No posts yet.</p>`) {
		t.Errorf("home = %s", html)
	}
}

func TestMissingStore(t *testing.T) {
	_, err := newRenderer().RenderToString(context.Background(), vdom.C(PostList), nil)
	if err == nil || !strings.Contains(err.Error(), "no store") {
		t.Errorf("RenderToString() error = %v", err)
	}
}

func TestSiblingsLoadInParallel(t *testing.T) {
	store := NewMemoryStore(SamplePosts()...)
	store.Latency = 50 * time.Millisecond
	site := &Site{Store: store}

	start := time.Now()
	renderPage(t, site.Home(""))
	// PostList and Recent each wait once; serial loading would take 100ms.
	if d := time.Since(start); d >= 95*time.Millisecond {
		t.Errorf("home took %v, siblings did not load in parallel", d)
	}
}

func TestLookup(t *testing.T) {
	site := NewSite()
	tests := []struct {
		path    string
		title   string
		wantErr bool
	}{
		{"/", "Home | Vango Blog", false},
		{"", "Home | Vango Blog", false},
		{"/about", "About | Vango Blog", false},
		{"/posts/hello-world", "hello-world | Vango Blog", false},
		{"/posts/", "", true},
		{"/posts/a/b", "", true},
		{"/contact", "", true},
	}

	for _, tt := range tests {
		page, err := site.Lookup(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("Lookup(%q) error = %v", tt.path, err)
			continue
		}
		if page.Title != tt.title {
			t.Errorf("Lookup(%q).Title = %q, want %q", tt.path, page.Title, tt.title)
		}
	}
}

func TestRoutes(t *testing.T) {
	routes, err := NewSite().Routes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := "/,/about,/posts/escaping,/posts/async-components,/posts/hello-world"
	if got := strings.Join(routes, ","); got != want {
		t.Errorf("Routes() = %s", got)
	}
}

func TestServedSite(t *testing.T) {
	srv := server.New(server.Config{
		Renderer: newRenderer(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	NewSite().Register(srv)

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/", http.StatusOK, "<h1>Posts</h1>"},
		{"/?theme=dark", http.StatusOK, "<p>Theme: dark</p>"},
		{"/?theme=neon", http.StatusOK, "<p>Theme: light</p>"},
		{"/posts/hello-world", http.StatusOK, "<h1>Hello, World</h1>"},
		{"/posts/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.path, rec.Code, tt.status)
			continue
		}
		if tt.want != "" && !strings.Contains(rec.Body.String(), tt.want) {
			t.Errorf("GET %s missing %q", tt.path, tt.want)
		}
	}
}
