package main

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/ssr/internal/demo"
	"github.com/vango-dev/ssr/internal/errors"
	"github.com/vango-dev/ssr/pkg/server"
)

type renderFlags struct {
	pretty   bool
	indent   string
	xml      bool
	jsx      bool
	shallow  bool
	sort     bool
	fragment bool
	theme    string
	output   string
}

func renderCmd(g *globalFlags) *cobra.Command {
	f := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [route]",
		Short: "Render one page to stdout or a file",
		Long: `Render a page of the demo site without starting a server.

Flags override the render section of the config file.

Examples:
  vango-ssr render /
  vango-ssr render /posts/hello-world --pretty
  vango-ssr render /about --fragment --shallow`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route := "/"
			if len(args) == 1 {
				route = args[0]
			}
			return runRender(cmd, g, f, route)
		},
	}

	cmd.Flags().BoolVarP(&f.pretty, "pretty", "p", false, "Indent the output")
	cmd.Flags().StringVar(&f.indent, "indent", "", "Indent string for --pretty (default tab)")
	cmd.Flags().BoolVar(&f.xml, "xml", false, "Self-close empty elements")
	cmd.Flags().BoolVar(&f.jsx, "jsx", false, "JSX-style output")
	cmd.Flags().BoolVar(&f.shallow, "shallow", false, "Render nested components as placeholders")
	cmd.Flags().BoolVar(&f.sort, "sort", false, "Sort attributes")
	cmd.Flags().BoolVar(&f.fragment, "fragment", false, "Render the page body only, without the document")
	cmd.Flags().StringVar(&f.theme, "theme", "", "Theme: light or dark")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, g *globalFlags, f *renderFlags, route string) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("pretty") {
		cfg.Render.Pretty = f.pretty
	}
	if flags.Changed("indent") {
		cfg.Render.Indent = f.indent
		if !cfg.Render.Pretty {
			warn(cmd.ErrOrStderr(), "--indent has no effect without --pretty")
		}
	}
	if flags.Changed("xml") {
		cfg.Render.XML = f.xml
	}
	if flags.Changed("jsx") {
		cfg.Render.JSX = f.jsx
	}
	if flags.Changed("shallow") {
		cfg.Render.Shallow = f.shallow
	}
	if flags.Changed("sort") {
		cfg.Render.SortAttributes = f.sort
	}

	logger := cfg.NewLogger(cmd.ErrOrStderr())
	renderer := newRenderer(cfg, logger, nil)

	site := demo.NewSite()
	site.Theme = f.theme
	page, err := site.Lookup(route)
	if err != nil {
		return errors.New("E122").
			WithDetail("No page matches " + route).
			WithSuggestion("Try /, /about or /posts/hello-world")
	}
	if page.Lang == "" {
		page.Lang = cfg.Render.Lang
	}

	var w io.Writer = cmd.OutOrStdout()
	if f.output != "" {
		file, err := os.Create(f.output)
		if err != nil {
			return errors.New("E120").Wrap(err)
		}
		defer file.Close()
		w = file
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RenderTimeout())
	defer cancel()

	if f.fragment {
		err = renderer.RenderToWriter(ctx, w, page.Body, page.Context)
		if err == nil {
			_, err = io.WriteString(w, "\n")
		}
	} else {
		err = renderer.RenderPage(ctx, w, page)
	}
	if err != nil {
		return renderError(route, err)
	}

	if f.output != "" {
		success(cmd.OutOrStdout(), "Rendered %s to %s", route, f.output)
	}
	return nil
}

// renderError converts a render failure into a CLI error.
func renderError(route string, err error) error {
	switch server.StatusFor(err) {
	case http.StatusNotFound:
		return errors.New("E122").WithDetail("No page matches " + route).Wrap(err)
	case http.StatusGatewayTimeout:
		return errors.New("E121").
			WithDetail("Rendering " + route + " did not finish in time").
			WithSuggestion("Raise server.timeout in the config file").
			Wrap(err)
	}
	return errors.New("E120").WithDetail("Rendering " + route + " failed").Wrap(err)
}
