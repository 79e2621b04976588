// Package flops measures achieved floating-point throughput with a
// dense matrix multiply (DGEMM), approximating the compute ceiling.
package flops

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"perfprobe/internal/benchmark"
)

const (
	DefaultN      = 2048
	DefaultTrials = 3
	DefaultSeed   = 1
)

const elementSize = 8 // float64

// Config sizes one compute run.
type Config struct {
	N      int   // matrix dimension (N×N)
	Trials int   // every trial counts, no warm-up exclusion
	Seed   int64 // input matrices are reproducible for a fixed seed

	// Backend overrides capability detection; nil means Detect().
	Backend Backend
}

func (c *Config) applyDefaults() {
	if c.N == 0 {
		c.N = DefaultN
	}
	if c.Trials == 0 {
		c.Trials = DefaultTrials
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.Backend == nil {
		c.Backend = Detect()
	}
}

func (c Config) validate() error {
	if c.N <= 0 {
		return fmt.Errorf("matrix dimension must be positive, got %d", c.N)
	}
	if c.Trials < 1 {
		return fmt.Errorf("trial count must be at least 1, got %d", c.Trials)
	}
	return nil
}

// FlopCount is the exact operation count of one N×N multiply: one
// multiply and one add per inner step, 2·N³ in total.
func FlopCount(n int) float64 {
	nn := float64(n)
	return 2 * nn * nn * nn
}

// TrialResult is the measurement of a single multiply.
type TrialResult struct {
	ElapsedSeconds float64 `json:"elapsed_s"`
	GFLOPS         float64 `json:"gflops"`
}

// Report is the outcome of one compute run.
type Report struct {
	N       int           `json:"n"`
	Trials  int           `json:"trials"`
	Backend string        `json:"backend"`
	Results []TrialResult `json:"results"`

	AvgTimeSeconds float64 `json:"avg_time_s"`
	// AvgGFLOPS is converted once from the mean trial time, not averaged
	// over per-trial rates, to avoid the bias of averaging rates.
	AvgGFLOPS  float64 `json:"avg_gflops"`
	PeakGFLOPS float64 `json:"peak_gflops"`
}

// Run allocates the three matrices, fills the inputs with reproducible
// values in [0,1) and the output with zeros, then times Trials
// multiplies. The result matrix is never verified here; only speed is
// measured.
func Run(cfg Config) (*Report, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cells := cfg.N * cfg.N
	if cells/cfg.N != cfg.N || int64(cells) > math.MaxInt64/(3*elementSize) {
		return nil, fmt.Errorf("%w: dimension %d overflows addressable memory", benchmark.ErrAllocation, cfg.N)
	}
	if err := benchmark.CheckAllocatable(3 * uint64(cells) * elementSize); err != nil {
		return nil, err
	}

	a := make([]float64, cells)
	b := make([]float64, cells)
	c := make([]float64, cells)
	fill(cfg.Seed, a, b)

	slog.Debug("flops workload initialized",
		"n", cfg.N, "backend", cfg.Backend.Name(), "bytes", 3*int64(cells)*elementSize)

	elapsed := make([]time.Duration, cfg.Trials)
	for trial := 0; trial < cfg.Trials; trial++ {
		start := time.Now()
		cfg.Backend.Multiply(cfg.N, a, b, c)
		elapsed[trial] = time.Since(start)
		slog.Debug("flops trial complete", "trial", trial, "elapsed", elapsed[trial])
	}

	return buildReport(cfg, elapsed), nil
}

// fill seeds the input matrices with reproducible values in [0,1).
func fill(seed int64, a, b []float64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range a {
		a[i] = rng.Float64()
		b[i] = rng.Float64()
	}
}

// buildReport derives per-trial and aggregate figures from raw trial
// times. GFLOPS = 2·N³ / elapsed seconds / 1e9.
func buildReport(cfg Config, elapsed []time.Duration) *Report {
	rep := &Report{
		N:       cfg.N,
		Trials:  len(elapsed),
		Backend: cfg.Backend.Name(),
		Results: make([]TrialResult, len(elapsed)),
	}

	flop := FlopCount(cfg.N)
	var total time.Duration
	for i, e := range elapsed {
		total += e
		g := flop / e.Seconds() / 1e9
		rep.Results[i] = TrialResult{ElapsedSeconds: e.Seconds(), GFLOPS: g}
		if g > rep.PeakGFLOPS {
			rep.PeakGFLOPS = g
		}
	}

	avg := total / time.Duration(len(elapsed))
	rep.AvgTimeSeconds = avg.Seconds()
	rep.AvgGFLOPS = flop / avg.Seconds() / 1e9
	return rep
}
