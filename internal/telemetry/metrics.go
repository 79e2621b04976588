package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics instruments benchmark executions for Prometheus scraping.
type Metrics struct {
	RunsTotal   *prometheus.CounterVec
	RunDuration *prometheus.HistogramVec

	TriadBandwidthGBs prometheus.Gauge
	PeakGFLOPS        prometheus.Gauge
}

// NewMetrics creates and registers the benchmark metrics. A nil
// registerer means the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "perfprobe_runs_total",
				Help: "Total number of benchmark runs",
			},
			[]string{"kind", "status"},
		),
		RunDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "perfprobe_run_duration_seconds",
				Help:    "Wall-clock duration of complete benchmark runs",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
			[]string{"kind"},
		),
		TriadBandwidthGBs: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "perfprobe_memory_bandwidth_gbps",
				Help: "Best Triad memory bandwidth of the last stream run in GB/s",
			},
		),
		PeakGFLOPS: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "perfprobe_peak_gflops",
				Help: "Peak GFLOPS of the last flops run",
			},
		),
	}

	reg.MustRegister(m.RunsTotal, m.RunDuration, m.TriadBandwidthGBs, m.PeakGFLOPS)
	return m
}

// ObserveRun records one finished benchmark execution.
func (m *Metrics) ObserveRun(kind string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.RunsTotal.WithLabelValues(kind, status).Inc()
	if err == nil {
		m.RunDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
	}
}

// StartMetricsServer exposes /metrics on the given port and blocks.
func StartMetricsServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
