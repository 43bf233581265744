package main

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/ssr/internal/config"
	"github.com/vango-dev/ssr/internal/errors"
	"github.com/vango-dev/ssr/pkg/render"
	"github.com/vango-dev/ssr/pkg/server"
)

// loadConfig loads the config named by --config, or searches from the
// working directory, then applies --log-level and validates.
func loadConfig(g *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case g.config == "":
		cfg, err = config.LoadFromWorkingDir()
	default:
		var fi os.FileInfo
		fi, err = os.Stat(g.config)
		switch {
		case err != nil:
			err = errors.New("E100").
				WithDetail("Cannot find " + g.config).
				Wrap(err)
		case fi.IsDir():
			cfg, err = config.Load(g.config)
		default:
			cfg, err = config.LoadFile(g.config)
		}
	}
	if err != nil {
		return nil, err
	}

	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRenderer builds a renderer from cfg. reg may be nil.
func newRenderer(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) *render.Renderer {
	rc := render.RendererConfig{
		Options:               cfg.RenderOptions(),
		MaxSiblingConcurrency: cfg.Render.MaxConcurrency,
		Logger:                logger,
	}
	if reg != nil {
		rc.Metrics = render.NewMetrics(render.MetricsConfig{Registry: reg})
	}
	return render.NewRenderer(rc)
}

// newServer builds the HTTP server for cfg.
func newServer(cfg *config.Config, logger *slog.Logger, metricsPath string) *server.Server {
	reg := prometheus.NewRegistry()
	return server.New(server.Config{
		Renderer:    newRenderer(cfg, logger, reg),
		Timeout:     cfg.RenderTimeout(),
		Streaming:   cfg.Server.Streaming,
		Lang:        cfg.Render.Lang,
		MetricsPath: metricsPath,
		Registry:    reg,
		Logger:      logger,
	})
}
