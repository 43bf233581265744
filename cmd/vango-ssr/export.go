package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/ssr/internal/demo"
	"github.com/vango-dev/ssr/internal/errors"
	"github.com/vango-dev/ssr/pkg/export"
)

func exportCmd(g *globalFlags) *cobra.Command {
	var (
		target      string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "export [routes...]",
		Short: "Pre-render pages to a directory or S3 bucket",
		Long: `Render pages and store them as static files.

Without routes, the routes from the config file are exported, or
every page of the site when none are configured. S3 targets read
credentials from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.

Examples:
  vango-ssr export
  vango-ssr export / /about --target=public
  vango-ssr export --target=s3://my-site/preview`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("target") {
				cfg.Export.Target = target
			}

			t, err := export.ParseTarget(cfg.ExportTarget())
			if err != nil {
				return errors.New("E140").
					WithDetail(err.Error()).
					WithSuggestion("Use a directory or s3://bucket/prefix")
			}
			store, err := t.Open(export.S3ClientConfig{
				Region:    cfg.Export.Region,
				Endpoint:  cfg.Export.Endpoint,
				PathStyle: cfg.Export.PathStyle,
			})
			if err != nil {
				return errors.New("E141").Wrap(err)
			}

			logger := cfg.NewLogger(cmd.ErrOrStderr())
			srv := newServer(cfg, logger, "-")
			site := demo.NewSite()
			site.Register(srv)

			routes := args
			if len(routes) == 0 {
				routes = cfg.Export.Routes
			}
			if len(routes) == 0 {
				routes, err = site.Routes(cmd.Context())
				if err != nil {
					return errors.New("E141").Wrap(err)
				}
			}

			exp := &export.Exporter{
				Handler:     srv,
				Store:       store,
				Concurrency: concurrency,
				Logger:      logger,
			}
			results, err := exp.Export(cmd.Context(), routes)
			if err != nil {
				return errors.New("E141").Wrap(err)
			}

			out := cmd.OutOrStdout()
			total := 0
			for _, r := range results {
				info(out, "%-28s → %s", r.Route, r.Key)
				total += r.Bytes
			}
			success(out, "Exported %d pages (%d bytes) to %s", len(results), total, t)
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "Directory or s3://bucket/prefix (default from config)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Pages rendered at once")

	return cmd
}
