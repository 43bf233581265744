package demo

import (
	"context"
	"fmt"

	"github.com/vango-dev/ssr/pkg/vdom"
)

// Context keys.
const (
	themeKey = "theme"
	storeKey = "store"
)

// Theme colors the site.
type Theme struct {
	Name       string
	Background string
	Foreground string
	Accent     string
}

// Themes available to ThemeProvider.
var Themes = map[string]Theme{
	"light": {Name: "light", Background: "#ffffff", Foreground: "#1f2328", Accent: "#0969da"},
	"dark":  {Name: "dark", Background: "#0d1117", Foreground: "#e6edf3", Accent: "#2f81f7"},
}

func themeOf(rc vdom.RenderContext) Theme {
	if t, ok := rc.Value(themeKey).(Theme); ok {
		return t
	}
	return Themes["light"]
}

func storeOf(rc vdom.RenderContext) (Store, error) {
	s, ok := rc.Value(storeKey).(Store)
	if !ok {
		return nil, fmt.Errorf("demo: no store in render context")
	}
	return s, nil
}

// themeProvider puts the theme named by its "name" prop in child context.
type themeProvider struct{ vdom.Base }

func (p *themeProvider) GetChildContext() vdom.RenderContext {
	theme, ok := Themes[p.Props.String("name")]
	if !ok {
		theme = Themes["light"]
	}
	return vdom.RenderContext{themeKey: theme}
}

func (p *themeProvider) Render(props vdom.Props, _ vdom.State, _ vdom.RenderContext) *vdom.VNode {
	return vdom.Div(vdom.Class("theme-root"), props.Children())
}

// ThemeProvider renders its children under the theme named by "name".
var ThemeProvider = vdom.NewClass(func(vdom.Props, vdom.RenderContext) *themeProvider {
	return &themeProvider{}
}).Named("ThemeProvider").WithDefaults(vdom.PropsOf("name", "light"))

// Layout wraps a page body with the site header and footer.
var Layout = vdom.Func(func(props vdom.Props, rc vdom.RenderContext) *vdom.VNode {
	theme := themeOf(rc)
	return vdom.Div(
		vdom.Class("layout"),
		vdom.StyleMap("backgroundColor", theme.Background, "color", theme.Foreground, "minHeight", "100vh"),
		vdom.Header(
			vdom.Nav(
				vdom.A(vdom.Href("/"), vdom.StyleMap("color", theme.Accent), "Blog"),
				" ",
				vdom.A(vdom.Href("/about"), vdom.StyleMap("color", theme.Accent), "About"),
			),
		),
		vdom.Main(props.Children()),
		vdom.Footer(vdom.P(vdom.Textf("Theme: %s", theme.Name))),
	)
}).Named("Layout")

// tagList renders a post's tags.
var tagList = vdom.Func(func(props vdom.Props, rc vdom.RenderContext) *vdom.VNode {
	tags, _ := props.Value("tags").([]string)
	if len(tags) == 0 {
		return nil
	}
	return vdom.Ul(vdom.Class("tags"), vdom.Range(tags, func(tag string, _ int) *vdom.VNode {
		return vdom.Li(vdom.Key(tag), vdom.ClassMap("tag", true, "tag-render", tag == "render"), tag)
	}))
}).Named("TagList")

// postList loads every post before rendering.
type postList struct{ vdom.Base }

func (l *postList) ComponentWillMount(ctx context.Context) (vdom.Props, error) {
	store, err := storeOf(l.Context)
	if err != nil {
		return nil, err
	}
	posts, err := store.Posts(ctx)
	if err != nil {
		return nil, err
	}
	return vdom.PropsOf("posts", posts), nil
}

func (l *postList) Render(props vdom.Props, _ vdom.State, _ vdom.RenderContext) *vdom.VNode {
	posts, _ := props.Value("posts").([]Post)
	if len(posts) == 0 {
		return vdom.P(vdom.Class("empty"), "No posts yet.")
	}
	return vdom.Ul(vdom.Class("posts"), vdom.Range(posts, func(p Post, _ int) *vdom.VNode {
		return vdom.Li(
			vdom.Key(p.Slug),
			vdom.A(vdom.Href("/posts/"+p.Slug), p.Title),
			" ",
			vdom.Span(vdom.Class("date"), p.Published.Format("2006-01-02")),
		)
	}))
}

// PostList lists every post in the store.
var PostList = vdom.NewClass(func(vdom.Props, vdom.RenderContext) *postList { return &postList{} }).Named("PostList")

// postView loads the post named by its "slug" prop.
type postView struct{ vdom.Base }

func (v *postView) ComponentWillMount(ctx context.Context) (vdom.Props, error) {
	store, err := storeOf(v.Context)
	if err != nil {
		return nil, err
	}
	p, err := store.Post(ctx, v.Props.String("slug"))
	if err != nil {
		return nil, err
	}
	return vdom.PropsOf("post", p), nil
}

func (v *postView) Render(props vdom.Props, _ vdom.State, _ vdom.RenderContext) *vdom.VNode {
	p, _ := props.Value("post").(Post)
	return vdom.Article(
		vdom.Class("post"),
		vdom.H1(p.Title),
		vdom.P(vdom.Class("byline"), vdom.Textf("By %s on %s", p.Author, p.Published.Format("January 2, 2006"))),
		vdom.C(tagList, vdom.Prop("tags", p.Tags)),
		vdom.Div(vdom.Class("body"), vdom.P(p.Body)),
	)
}

// PostView renders a single post.
var PostView = vdom.NewClass(func(vdom.Props, vdom.RenderContext) *postView { return &postView{} }).Named("PostView")

// recent loads the newest posts for the sidebar. It resolves in
// parallel with the main content.
type recent struct{ vdom.Base }

func (r *recent) ComponentWillMount(ctx context.Context) (vdom.Props, error) {
	store, err := storeOf(r.Context)
	if err != nil {
		return nil, err
	}
	posts, err := store.Posts(ctx)
	if err != nil {
		return nil, err
	}
	limit := 3
	if n, ok := r.Props.Value("limit").(int); ok && n > 0 {
		limit = n
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return vdom.PropsOf("posts", posts), nil
}

func (r *recent) Render(props vdom.Props, _ vdom.State, _ vdom.RenderContext) *vdom.VNode {
	posts, _ := props.Value("posts").([]Post)
	return vdom.Aside(
		vdom.Class("recent"),
		vdom.H2("Recent"),
		vdom.Ol(vdom.Range(posts, func(p Post, _ int) *vdom.VNode {
			return vdom.Li(vdom.Key(p.Slug), p.Title)
		})),
	)
}

// Recent shows the newest posts. The "limit" prop defaults to 3.
var Recent = vdom.NewClass(func(vdom.Props, vdom.RenderContext) *recent { return &recent{} }).Named("Recent").WithDefaults(vdom.PropsOf("limit", 3))
