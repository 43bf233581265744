package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/ssr/internal/demo"
	"github.com/vango-dev/ssr/internal/errors"
)

type profile struct {
	Name     string
	Clients  int
	Duration time.Duration
	Latency  time.Duration
}

var profiles = map[string]profile{
	"fast": {
		Name:     "fast",
		Clients:  10,
		Duration: 2 * time.Second,
	},
	"standard": {
		Name:     "standard",
		Clients:  50,
		Duration: 10 * time.Second,
		Latency:  5 * time.Millisecond,
	},
	"stress": {
		Name:     "stress",
		Clients:  200,
		Duration: 30 * time.Second,
		Latency:  20 * time.Millisecond,
	},
}

type benchReport struct {
	Version    string         `json:"version"`
	Run        runInfo        `json:"run"`
	Workload   workloadInfo   `json:"workload"`
	LatencyMS  latencyInfo    `json:"latency_ms"`
	Throughput throughputInfo `json:"throughput"`
	Errors     uint64         `json:"errors"`
}

type runInfo struct {
	Timestamp string `json:"timestamp"`
	Go        string `json:"go"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPUCount  int    `json:"cpu_count"`
}

type workloadInfo struct {
	Profile      string   `json:"profile"`
	Clients      int      `json:"clients"`
	DurationMS   int64    `json:"duration_ms"`
	StoreLatency int64    `json:"store_latency_ms"`
	Routes       []string `json:"routes"`
	Streaming    bool     `json:"streaming"`
}

type latencyInfo struct {
	Min float64 `json:"min"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
	Max float64 `json:"max"`
}

type throughputInfo struct {
	PagesTotal  uint64  `json:"pages_total"`
	PagesPerSec float64 `json:"pages_per_sec"`
	BytesTotal  uint64  `json:"bytes_total"`
}

func benchCmd(g *globalFlags) *cobra.Command {
	var (
		profileName string
		clients     int
		duration    time.Duration
		latency     time.Duration
		jsonOut     string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure page render latency under load",
		Long: `Request the demo pages from an in-process server with concurrent
clients and report latency percentiles and throughput.

Profiles:
  fast       10 clients for 2s
  standard   50 clients for 10s, 5ms store latency
  stress     200 clients for 30s, 20ms store latency

Examples:
  vango-ssr bench
  vango-ssr bench --profile=standard --json=report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := profiles[profileName]
			if !ok {
				return errors.New("E161").
					WithDetail("Unknown profile " + profileName).
					WithSuggestion("Use fast, standard or stress")
			}
			flags := cmd.Flags()
			if flags.Changed("clients") {
				p.Clients = clients
			}
			if flags.Changed("duration") {
				p.Duration = duration
			}
			if flags.Changed("latency") {
				p.Latency = latency
			}
			if p.Clients <= 0 || p.Duration <= 0 {
				return errors.New("E161").WithDetail("--clients and --duration must be positive")
			}

			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			logger := cfg.NewLogger(io.Discard)
			srv := newServer(cfg, logger, "-")

			store := demo.NewMemoryStore(demo.SamplePosts()...)
			store.Latency = p.Latency
			site := &demo.Site{Store: store}
			site.Register(srv)

			routes, err := site.Routes(cmd.Context())
			if err != nil {
				return err
			}

			report, err := runBench(cmd.Context(), srv, routes, p)
			if err != nil {
				return err
			}
			report.Workload.Streaming = cfg.Server.Streaming

			writeSummary(cmd.OutOrStdout(), report)
			if jsonOut != "" {
				out := cmd.OutOrStdout()
				if jsonOut != "-" {
					file, err := os.Create(jsonOut)
					if err != nil {
						return err
					}
					defer file.Close()
					out = file
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "fast", "Workload profile: fast, standard or stress")
	cmd.Flags().IntVar(&clients, "clients", 0, "Concurrent clients (overrides profile)")
	cmd.Flags().DurationVar(&duration, "duration", 0, "Run duration (overrides profile)")
	cmd.Flags().DurationVar(&latency, "latency", 0, "Simulated store latency (overrides profile)")
	cmd.Flags().StringVar(&jsonOut, "json", "", "Write a JSON report to a file, or - for stdout")

	return cmd
}

// runBench drives p.Clients clients against h for p.Duration. Each client
// cycles through routes.
func runBench(ctx context.Context, h http.Handler, routes []string, p profile) (benchReport, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Duration)
	defer cancel()

	var (
		mu      sync.Mutex
		samples []time.Duration
		bytes   uint64
		errs    uint64
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for c := 0; c < p.Clients; c++ {
		g.Go(func() error {
			var local []time.Duration
			var localBytes, localErrs uint64
			for i := c; gctx.Err() == nil; i++ {
				route := routes[i%len(routes)]
				req := httptest.NewRequest(http.MethodGet, route, nil).WithContext(gctx)
				rec := httptest.NewRecorder()

				t0 := time.Now()
				h.ServeHTTP(rec, req)
				d := time.Since(t0)

				if gctx.Err() != nil {
					break
				}
				if rec.Code != http.StatusOK {
					localErrs++
					continue
				}
				local = append(local, d)
				localBytes += uint64(rec.Body.Len())
			}

			mu.Lock()
			samples = append(samples, local...)
			bytes += localBytes
			errs += localErrs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return benchReport{}, err
	}
	elapsed := time.Since(start)

	return buildReport(p, routes, samples, bytes, errs, elapsed), nil
}

func buildReport(p profile, routes []string, samples []time.Duration, bytes, errs uint64, elapsed time.Duration) benchReport {
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	report := benchReport{
		Version: version,
		Run: runInfo{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Go:        runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			CPUCount:  runtime.NumCPU(),
		},
		Workload: workloadInfo{
			Profile:      p.Name,
			Clients:      p.Clients,
			DurationMS:   p.Duration.Milliseconds(),
			StoreLatency: p.Latency.Milliseconds(),
			Routes:       routes,
		},
		Throughput: throughputInfo{
			PagesTotal: uint64(len(samples)),
			BytesTotal: bytes,
		},
		Errors: errs,
	}
	if elapsed > 0 {
		report.Throughput.PagesPerSec = float64(len(samples)) / elapsed.Seconds()
	}
	if len(samples) > 0 {
		report.LatencyMS = latencyInfo{
			Min: ms(samples[0]),
			P50: ms(percentile(samples, 0.50)),
			P95: ms(percentile(samples, 0.95)),
			P99: ms(percentile(samples, 0.99)),
			Max: ms(samples[len(samples)-1]),
		}
	}
	return report
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	idx := int(math.Ceil(float64(len(sorted))*p)) - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func writeSummary(w io.Writer, report benchReport) {
	fmt.Fprintln(w, "=== vango-ssr render benchmark ===")
	fmt.Fprintf(w, "Profile: %s\n", report.Workload.Profile)
	fmt.Fprintf(w, "Clients: %d\n", report.Workload.Clients)
	fmt.Fprintf(w, "Duration: %s\n", time.Duration(report.Workload.DurationMS)*time.Millisecond)
	fmt.Fprintf(w, "Store latency: %s\n", time.Duration(report.Workload.StoreLatency)*time.Millisecond)
	fmt.Fprintf(w, "Routes: %d\n", len(report.Workload.Routes))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Pages: %d\n", report.Throughput.PagesTotal)
	fmt.Fprintf(w, "Throughput: %.1f pages/s\n", report.Throughput.PagesPerSec)
	fmt.Fprintf(w, "Errors: %d\n", report.Errors)
	fmt.Fprintln(w)

	if report.LatencyMS.Max == 0 {
		fmt.Fprintln(w, "No latency samples recorded.")
		return
	}
	fmt.Fprintln(w, "Latency (request -> full document):")
	fmt.Fprintf(w, "  min: %.2f ms\n", report.LatencyMS.Min)
	fmt.Fprintf(w, "  p50: %.2f ms\n", report.LatencyMS.P50)
	fmt.Fprintf(w, "  p95: %.2f ms\n", report.LatencyMS.P95)
	fmt.Fprintf(w, "  p99: %.2f ms\n", report.LatencyMS.P99)
	fmt.Fprintf(w, "  max: %.2f ms\n", report.LatencyMS.Max)
}
