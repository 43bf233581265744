// Command vango-ssr renders, serves and exports the demo site with the
// asynchronous server-side renderer.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/ssr/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		errors.Fprint(stderr, err)
		return 1
	}
	return 0
}

// globalFlags are shared by every command.
type globalFlags struct {
	config   string
	logLevel string
	noColor  bool
}

func rootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "vango-ssr",
		Short: "Render component trees to HTML on the server",
		Long: `vango-ssr renders component trees to HTML.

Components may load data before they render; siblings load in
parallel and the output keeps document order. The CLI works on the
bundled demo blog:

  • render   print one page
  • serve    serve pages over HTTP
  • export   pre-render pages to a directory or S3 bucket
  • bench    measure render latency under load`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.noColor {
				errors.SetColor(false)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&g.config, "config", "c", "", "Config file or directory (default: search from working directory)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	cmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored error output")

	cmd.AddCommand(
		initCmd(g),
		renderCmd(g),
		serveCmd(g),
		exportCmd(g),
		benchCmd(g),
		versionCmd(),
	)
	return cmd
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
