package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/ssr/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Context is the initial render context for Body
	Context vdom.RenderContext

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.)
	Links []LinkTag

	// Scripts contains script tags. Defer and async scripts go in the head,
	// the others at the end of the body.
	Scripts []ScriptTag

	// Styles contains inline CSS styles
	Styles []string

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer. The
// body is resolved first; when it fails nothing is written.
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, page PageData) error {
	body, err := r.RenderToString(ctx, page.Body, page.Context)
	if err != nil {
		return err
	}

	var buf strings.Builder
	writeDocumentStart(&buf, page)
	writeBody(&buf, page, body)
	_, err = io.WriteString(w, buf.String())
	return err
}

// writeDocumentStart writes the doctype, the html tag and the head.
func writeDocumentStart(b *strings.Builder, page PageData) {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(b, "<html lang=\"%s\">\n", encodeEntities(lang))
	b.WriteString("<head>\n")
	b.WriteString(`  <meta charset="utf-8">` + "\n")
	b.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")

	if page.Title != "" {
		fmt.Fprintf(b, "  <title>%s</title>\n", encodeEntities(page.Title))
	}
	for _, m := range page.Meta {
		writeTag(b, "meta",
			"charset", m.Charset,
			"name", m.Name,
			"property", m.Property,
			"http-equiv", m.HTTPEquiv,
			"content", m.Content,
		)
	}
	for _, l := range page.Links {
		writeTag(b, "link",
			"rel", l.Rel,
			"href", l.Href,
			"type", l.Type,
			"sizes", l.Sizes,
			"crossorigin", l.CrossOrigin,
			"media", l.Media,
		)
	}
	for _, href := range page.StyleSheets {
		writeTag(b, "link", "rel", "stylesheet", "href", href)
	}
	for _, style := range page.Styles {
		fmt.Fprintf(b, "  <style>%s</style>\n", style)
	}
	for _, s := range page.Scripts {
		if s.Defer || s.Async {
			writeScript(b, s)
		}
	}
	b.WriteString("</head>\n")
}

// writeBody writes the rendered body, trailing scripts and closing tags.
func writeBody(b *strings.Builder, page PageData, body string) {
	b.WriteString("<body>\n")
	b.WriteString(body)
	b.WriteString("\n")
	for _, s := range page.Scripts {
		if !s.Defer && !s.Async {
			writeScript(b, s)
		}
	}
	b.WriteString("</body>\n</html>\n")
}

// writeTag writes an indented void head element with the non-empty
// attributes among the name/value pairs.
func writeTag(b *strings.Builder, tag string, pairs ...string) {
	b.WriteString("  <")
	b.WriteString(tag)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		fmt.Fprintf(b, ` %s="%s"`, pairs[i], encodeEntities(pairs[i+1]))
	}
	b.WriteString(">\n")
}

// writeScript writes a script element.
func writeScript(b *strings.Builder, s ScriptTag) {
	b.WriteString("  <script")
	if s.Src != "" {
		fmt.Fprintf(b, ` src="%s"`, encodeEntities(s.Src))
	}
	if s.Module {
		b.WriteString(` type="module"`)
	} else if s.Type != "" {
		fmt.Fprintf(b, ` type="%s"`, encodeEntities(s.Type))
	}
	if s.Defer {
		b.WriteString(" defer")
	}
	if s.Async {
		b.WriteString(" async")
	}
	b.WriteString(">")
	b.WriteString(s.Inline)
	b.WriteString("</script>\n")
}
