package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestPercentile(t *testing.T) {
	sorted := []time.Duration{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	tests := []struct {
		p    float64
		want time.Duration
	}{
		{0, 1},
		{0.5, 5},
		{0.95, 10},
		{0.1, 1},
		{1, 10},
	}
	for _, tt := range tests {
		if got := percentile(sorted, tt.p); got != tt.want {
			t.Errorf("percentile(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if percentile(nil, 0.5) != 0 {
		t.Error("percentile of no samples should be 0")
	}
}

func TestBuildReport(t *testing.T) {
	p := profile{Name: "x", Clients: 2, Duration: time.Second}
	samples := []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}

	r := buildReport(p, []string{"/"}, samples, 300, 1, time.Second)
	if r.Throughput.PagesTotal != 3 || r.Throughput.PagesPerSec != 3 || r.Errors != 1 {
		t.Errorf("throughput = %+v, errors = %d", r.Throughput, r.Errors)
	}
	if r.LatencyMS.Min != 1 || r.LatencyMS.P50 != 2 || r.LatencyMS.Max != 3 {
		t.Errorf("latency = %+v", r.LatencyMS)
	}
}

func TestRunBench(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("ok"))
	})

	p := profile{Name: "test", Clients: 3, Duration: 50 * time.Millisecond}
	r, err := runBench(context.Background(), h, []string{"/", "/bad"}, p)
	if err != nil {
		t.Fatal(err)
	}
	if r.Throughput.PagesTotal == 0 || r.Errors == 0 {
		t.Errorf("report = %+v", r)
	}
	if r.Throughput.BytesTotal != 2*r.Throughput.PagesTotal {
		t.Errorf("bytes = %d for %d pages", r.Throughput.BytesTotal, r.Throughput.PagesTotal)
	}
}

func TestBenchCommand(t *testing.T) {
	dir := project(t, quietConfig)

	code, out, stderr := runCLI(t, "bench", "--clients", "2", "--duration", "100ms", "--json", "-", "--config", dir)
	if code != 0 {
		t.Fatalf("bench failed: %s", stderr)
	}
	if !strings.Contains(out, "=== vango-ssr render benchmark ===") {
		t.Errorf("output = %q", out)
	}

	raw := out[strings.Index(out, "{"):]
	var report benchReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		t.Fatalf("json report: %v", err)
	}
	if report.Workload.Clients != 2 || report.Errors != 0 || report.Throughput.PagesTotal == 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestBenchUnknownProfile(t *testing.T) {
	code, _, stderr := runCLI(t, "bench", "--profile", "huge", "--config", project(t, quietConfig))
	if code != 1 || !strings.Contains(stderr, "E161") {
		t.Errorf("exit %d, stderr %q", code, stderr)
	}
}
