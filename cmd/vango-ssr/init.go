package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/ssr/internal/config"
	"github.com/vango-dev/ssr/internal/errors"
)

func initCmd(g *globalFlags) *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default configuration file",
		Long: `Write ssr.yaml (or ssr.json) with the default settings.

Examples:
  vango-ssr init
  vango-ssr init site --format=json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, format, force)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "File format: yaml or json")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, dir, format string, force bool) error {
	var name string
	switch format {
	case "yaml", "yml":
		name = "ssr.yaml"
	case "json":
		name = "ssr.json"
	default:
		return errors.New("E104").
			WithDetail("Unknown format " + format).
			WithSuggestion("Use --format=yaml or --format=json")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New("E105").Wrap(err)
	}
	if config.Exists(dir) && !force {
		return errors.New("E161").
			WithDetail("A configuration file already exists in " + dir).
			WithSuggestion("Pass --force to overwrite it")
	}

	path := filepath.Join(dir, name)
	cfg := config.New()
	cfg.Name = filepath.Base(absOr(dir))
	if err := cfg.SaveTo(path); err != nil {
		return err
	}

	success(cmd.OutOrStdout(), "Created %s", path)
	return nil
}

func absOr(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
