package demo

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/ssr/pkg/render"
	"github.com/vango-dev/ssr/pkg/server"
	"github.com/vango-dev/ssr/pkg/vdom"
)

// Site builds the pages of the demo blog.
type Site struct {
	Store Store

	// Title prefixes every page title. Default: "Vango Blog"
	Title string

	// Theme is the default theme name. Requests may override it with
	// ?theme=dark.
	Theme string
}

// NewSite returns a site serving the sample posts.
func NewSite() *Site {
	return &Site{Store: NewMemoryStore(SamplePosts()...)}
}

// Register adds the site's pages to srv.
func (s *Site) Register(srv *server.Server) {
	srv.Page("/", func(r *http.Request) (render.PageData, error) {
		return s.Home(themeParam(r)), nil
	})
	srv.Page("/about", func(r *http.Request) (render.PageData, error) {
		return s.About(themeParam(r)), nil
	})
	srv.Page("/posts/{slug}", func(r *http.Request) (render.PageData, error) {
		return s.Post(chi.URLParam(r, "slug"), themeParam(r)), nil
	})
}

// Routes lists every exportable route, one per post included.
func (s *Site) Routes(ctx context.Context) ([]string, error) {
	posts, err := s.Store.Posts(ctx)
	if err != nil {
		return nil, err
	}
	routes := []string{"/", "/about"}
	for _, p := range posts {
		routes = append(routes, "/posts/"+p.Slug)
	}
	return routes, nil
}

// Lookup returns the page for a path without going through HTTP.
func (s *Site) Lookup(path string) (render.PageData, error) {
	switch {
	case path == "" || path == "/":
		return s.Home(""), nil
	case path == "/about":
		return s.About(""), nil
	case strings.HasPrefix(path, "/posts/"):
		slug := strings.Trim(strings.TrimPrefix(path, "/posts/"), "/")
		if slug != "" && !strings.Contains(slug, "/") {
			return s.Post(slug, ""), nil
		}
	}
	return render.PageData{}, server.ErrNotFound
}

// Home is the post index.
func (s *Site) Home(theme string) render.PageData {
	return s.page("Home", theme, vdom.Div(
		vdom.Class("home"),
		vdom.Section(vdom.H1("Posts"), vdom.C(PostList)),
		vdom.C(Recent, vdom.Prop("limit", 2)),
	))
}

// About is a static page with no asynchronous components.
func (s *Site) About(theme string) render.PageData {
	return s.page("About", theme, vdom.Section(
		vdom.Class("about"),
		vdom.H1("About"),
		vdom.P("This blog is rendered on the server. Components that load data do so before they render, and siblings load in parallel."),
	))
}

// Post shows one post with the recent list beside it.
func (s *Site) Post(slug, theme string) render.PageData {
	return s.page(slug, theme, vdom.Div(
		vdom.Class("post-page"),
		vdom.C(PostView, vdom.Prop("slug", slug)),
		vdom.C(Recent),
	))
}

func (s *Site) page(title, theme string, content *vdom.VNode) render.PageData {
	site := s.Title
	if site == "" {
		site = "Vango Blog"
	}
	if theme == "" {
		theme = s.Theme
	}
	if theme == "" {
		theme = "light"
	}

	return render.PageData{
		Title: title + " | " + site,
		Meta: []render.MetaTag{
			{Name: "description", Content: "A blog rendered on the server"},
		},
		Styles: []string{"body { margin: 0; font-family: system-ui, sans-serif; }"},
		Body: vdom.C(ThemeProvider, vdom.Prop("name", theme),
			vdom.C(Layout, content),
		),
		Context: vdom.RenderContext{storeKey: s.Store},
	}
}

func themeParam(r *http.Request) string {
	if t := r.URL.Query().Get("theme"); t != "" {
		if _, ok := Themes[t]; ok {
			return t
		}
	}
	return ""
}
