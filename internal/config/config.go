package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/ssr/internal/errors"
	"github.com/vango-dev/ssr/pkg/render"
)

const (
	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default export target.
	DefaultOutput = "dist"

	// DefaultTimeout is the default per-request render timeout.
	DefaultTimeout = "10s"

	// DefaultLang is the default html lang attribute.
	DefaultLang = "en"

	// DefaultMetricsPath is where the server exposes Prometheus metrics.
	DefaultMetricsPath = "/metrics"
)

// FileNames are the configuration file names looked up in a project
// directory, in order of preference.
var FileNames = []string{"ssr.json", "ssr.yaml", "ssr.yml"}

// Config represents the complete project configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server" yaml:"server"`

	// Render contains renderer options.
	Render RenderConfig `json:"render" yaml:"render"`

	// Export contains static export configuration.
	Export ExportConfig `json:"export" yaml:"export"`

	// Log contains logging configuration.
	Log LogConfig `json:"log" yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// Timeout bounds a single page render (e.g., "10s").
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// Streaming flushes the document head before the body has resolved.
	Streaming bool `json:"streaming,omitempty" yaml:"streaming,omitempty"`

	// MetricsPath is the Prometheus endpoint; "-" disables it.
	MetricsPath string `json:"metricsPath,omitempty" yaml:"metricsPath,omitempty"`

	// StaticDir is served below /static/ when set.
	StaticDir string `json:"staticDir,omitempty" yaml:"staticDir,omitempty"`
}

// RenderConfig mirrors render.Options.
type RenderConfig struct {
	Pretty          bool   `json:"pretty,omitempty" yaml:"pretty,omitempty"`
	Indent          string `json:"indent,omitempty" yaml:"indent,omitempty"`
	Shallow         bool   `json:"shallow,omitempty" yaml:"shallow,omitempty"`
	ShallowRoot     bool   `json:"shallowRoot,omitempty" yaml:"shallowRoot,omitempty"`
	ExpandHighOrder bool   `json:"expandHighOrder,omitempty" yaml:"expandHighOrder,omitempty"`
	SortAttributes  bool   `json:"sortAttributes,omitempty" yaml:"sortAttributes,omitempty"`
	XML             bool   `json:"xml,omitempty" yaml:"xml,omitempty"`
	AllAttributes   bool   `json:"allAttributes,omitempty" yaml:"allAttributes,omitempty"`
	JSX             bool   `json:"jsx,omitempty" yaml:"jsx,omitempty"`

	// MaxConcurrency caps sibling goroutines per element; 0 means no limit.
	MaxConcurrency int `json:"maxConcurrency,omitempty" yaml:"maxConcurrency,omitempty"`

	// Lang is the html lang attribute of rendered pages.
	Lang string `json:"lang,omitempty" yaml:"lang,omitempty"`
}

// ExportConfig contains static export settings.
type ExportConfig struct {
	// Target is a directory or an s3://bucket/prefix URL.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Routes lists the paths to pre-render. Empty means every known page.
	Routes []string `json:"routes,omitempty" yaml:"routes,omitempty"`

	// Region is the AWS region for S3 targets.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// PathStyle forces path-style S3 addressing.
	PathStyle bool `json:"pathStyle,omitempty" yaml:"pathStyle,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			Timeout:     DefaultTimeout,
			MetricsPath: DefaultMetricsPath,
		},
		Render: RenderConfig{
			Lang: DefaultLang,
		},
		Export: ExportConfig{
			Target: DefaultOutput,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory, using the first
// of FileNames that exists.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E100").
		WithDetail("No ssr.json, ssr.yaml or ssr.yml found in " + dir).
		WithSuggestion("Create ssr.yaml or run 'vango-ssr init'")
}

// LoadFile reads configuration from the specified file path. The format
// follows the file extension.
func LoadFile(path string) (*Config, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No configuration file at " + path)
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := decode(path, format, data, cfg); err != nil {
		return nil, err
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "", errors.New("E104").
		WithDetail("Cannot tell the format of " + path).
		WithSuggestion("Rename the file to ssr.json or ssr.yaml")
}

// decode unmarshals data into cfg, rejecting unknown keys. Decoder errors
// are reported with the position they refer to.
func decode(path, format string, data []byte, cfg *Config) error {
	if format == "json" {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err := dec.Decode(cfg)
		if err == nil || err == io.EOF {
			return nil
		}
		e := errors.New("E102").Wrap(err).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case stderrors.As(err, &syntaxErr):
			e.WithOffset(path, data, syntaxErr.Offset)
		case stderrors.As(err, &typeErr):
			e.WithOffset(path, data, typeErr.Offset)
		}
		return e
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err == nil || err == io.EOF {
		return nil
	}
	return errors.New("E102").Wrap(err).
		WithLocationFromMessage(path, err).
		WithSuggestion("Check that " + filepath.Base(path) + " is valid YAML")
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path, in the format
// given by its extension.
func (c *Config) SaveTo(path string) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}

	var data []byte
	if format == "json" {
		data, err = json.MarshalIndent(c, "", "  ")
		// Add newline at end of file
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return errors.New("E105").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E105").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Timeout == "" {
		c.Server.Timeout = DefaultTimeout
	}
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = DefaultMetricsPath
	}
	if c.Render.Lang == "" {
		c.Render.Lang = DefaultLang
	}
	if c.Export.Target == "" {
		c.Export.Target = DefaultOutput
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E103").
			WithDetail("server.port must be between 0 and 65535")
	}
	if d, err := time.ParseDuration(c.Server.Timeout); err != nil || d <= 0 {
		return errors.New("E103").
			WithDetail("server.timeout must be a positive duration, got " + strconv.Quote(c.Server.Timeout)).
			WithSuggestion(`Use a Go duration such as "5s" or "500ms"`)
	}
	if c.Server.MetricsPath != "-" && !strings.HasPrefix(c.Server.MetricsPath, "/") {
		return errors.New("E103").
			WithDetail("server.metricsPath must start with / or be \"-\"")
	}
	if c.Render.MaxConcurrency < 0 {
		return errors.New("E103").
			WithDetail("render.maxConcurrency must not be negative")
	}
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.New("E103").
			WithDetail("log.level must be one of debug, info, warn, error; got " + strconv.Quote(c.Log.Level))
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return errors.New("E103").
			WithDetail("log.format must be text or json; got " + strconv.Quote(c.Log.Format))
	}
	return nil
}

// Address returns the listen address of the server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the base URL of the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// RenderTimeout returns the parsed server.timeout, falling back to the
// default when it does not parse.
func (c *Config) RenderTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultTimeout)
	}
	return d
}

// RenderOptions converts the render section to renderer options.
func (c *Config) RenderOptions() render.Options {
	r := c.Render
	return render.Options{
		Pretty:          r.Pretty,
		Indent:          r.Indent,
		Shallow:         r.Shallow,
		ShallowRoot:     r.ShallowRoot,
		ExpandHighOrder: r.ExpandHighOrder,
		SortAttributes:  r.SortAttributes,
		XML:             r.XML,
		AllAttributes:   r.AllAttributes,
		JSX:             r.JSX,
	}
}

// ExportTarget returns the export target. A relative directory is
// resolved against the config directory; S3 URLs are returned unchanged.
func (c *Config) ExportTarget() string {
	t := c.Export.Target
	if strings.HasPrefix(t, "s3://") || filepath.IsAbs(t) || c.Dir() == "" {
		return t
	}
	return filepath.Join(c.Dir(), t)
}

// StaticDir returns server.staticDir resolved against the config
// directory, or "" when unset.
func (c *Config) StaticDir() string {
	d := c.Server.StaticDir
	if d == "" || filepath.IsAbs(d) || c.Dir() == "" {
		return d
	}
	return filepath.Join(c.Dir(), d)
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the slog logger described by the log section.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, ok := logLevels[strings.ToLower(c.Log.Level)]
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range FileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a config file, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E100").
				WithDetail("No configuration file found in " + startDir + " or any parent directory").
				WithSuggestion("Create ssr.yaml or run 'vango-ssr init'")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or its nearest parent holding a config file. When none exists the
// defaults are returned.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		if errors.Is(err, "E100") {
			return New(), nil
		}
		return nil, err
	}

	return Load(root)
}
