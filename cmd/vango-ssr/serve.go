package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/ssr/internal/demo"
	"github.com/vango-dev/ssr/internal/errors"
	"github.com/vango-dev/ssr/pkg/server"
)

func serveCmd(g *globalFlags) *cobra.Command {
	var (
		port      int
		host      string
		streaming bool
		timeout   time.Duration
		latency   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo site over HTTP",
		Long: `Serve the demo site, rendering each page on request.

Examples:
  vango-ssr serve
  vango-ssr serve --port=8080 --streaming
  vango-ssr serve --latency=200ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("port") {
				cfg.Server.Port = port
			}
			if flags.Changed("host") {
				cfg.Server.Host = host
			}
			if flags.Changed("streaming") {
				cfg.Server.Streaming = streaming
			}
			if flags.Changed("timeout") {
				cfg.Server.Timeout = timeout.String()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := cfg.NewLogger(cmd.ErrOrStderr())
			srv := newServer(cfg, logger, cfg.Server.MetricsPath)

			site := demo.NewSite()
			if store, ok := site.Store.(*demo.MemoryStore); ok {
				store.Latency = latency
			}
			site.Register(srv)

			if dir := cfg.StaticDir(); dir != "" {
				if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
					warn(cmd.ErrOrStderr(), "static directory %s not found, skipping", dir)
				} else {
					srv.Static("/static/", os.DirFS(dir), server.CacheProduction)
					info(cmd.OutOrStdout(), "Static files from %s", dir)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success(cmd.OutOrStdout(), "Serving on %s", cfg.URL())
			if err := srv.Run(ctx, cfg.Address()); err != nil {
				return errors.New("E160").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&streaming, "streaming", false, "Flush the document head before the body resolves")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-request render timeout (default from config)")
	cmd.Flags().DurationVar(&latency, "latency", 0, "Simulated data store latency")

	return cmd
}
