// Package stream measures sustained main-memory bandwidth with the four
// classic STREAM kernels: Copy, Scale, Add and Triad.
package stream

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"perfprobe/internal/benchmark"
)

// Defaults match the reference workload: 80M float64 elements per array
// (640 MB each, ~1.9 GB total) so the working set defeats CPU caches,
// and 10 trials with the first discarded as warm-up.
const (
	DefaultSize   = 80_000_000
	DefaultTrials = 10
	DefaultScalar = 3.0
)

// Config sizes one bandwidth run. Buffers are allocated per invocation
// from these values; nothing is a compile-time constant.
type Config struct {
	Size    int     // elements per array
	Trials  int     // timed repetitions, first one discarded
	Workers int     // goroutines per kernel, defaults to GOMAXPROCS
	Scalar  float64 // multiplier for Scale and Triad
}

func (c *Config) applyDefaults() {
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.Trials == 0 {
		c.Trials = DefaultTrials
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Scalar == 0 {
		c.Scalar = DefaultScalar
	}
}

func (c Config) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("array size must be positive, got %d", c.Size)
	}
	if c.Trials < 2 {
		return fmt.Errorf("need at least 2 trials since the first is discarded, got %d", c.Trials)
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", c.Workers)
	}
	return nil
}

// KernelResult is the derived statistics for one kernel, computed over
// the trials retained after warm-up exclusion.
type KernelResult struct {
	Kernel   Kernel  `json:"-"`
	Name     string  `json:"name"`
	BestRate float64 `json:"best_rate_mbps"` // BytesMoved / min time / 1e6

	AvgTime float64 `json:"avg_time_s"`
	MinTime float64 `json:"min_time_s"`
	MaxTime float64 `json:"max_time_s"`
}

// Report is the outcome of one bandwidth run.
type Report struct {
	Size    int                      `json:"size"`
	Trials  int                      `json:"trials"`
	Workers int                      `json:"workers"`
	Kernels [numKernels]KernelResult `json:"kernels"`
}

// ArrayBytes is the footprint of a single array.
func (r *Report) ArrayBytes() int64 { return int64(r.Size) * elementSize }

// TotalBytes is the footprint of the whole workload (three arrays).
func (r *Report) TotalBytes() int64 { return 3 * r.ArrayBytes() }

// BestTriadMBs is the headline rate used for history comparisons.
func (r *Report) BestTriadMBs() float64 { return r.Kernels[Triad].BestRate }

// BandwidthGBs is the overall memory-bandwidth figure, taken from the
// Triad kernel's best rate.
func (r *Report) BandwidthGBs() float64 {
	min := r.Kernels[Triad].MinTime
	if min <= 0 {
		return 0
	}
	return float64(Triad.BytesMoved(r.Size)) / min / 1e9
}

// Run executes the full benchmark: allocate and initialize the three
// arrays, run Trials repetitions of the four kernels, and derive the
// statistics. The run owns its buffers for its whole lifetime and
// mutates them in place each trial.
func Run(cfg Config) (*Report, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if err := benchmark.CheckAllocatable(3 * uint64(cfg.Size) * elementSize); err != nil {
		return nil, err
	}

	a := make([]float64, cfg.Size)
	b := make([]float64, cfg.Size)
	c := make([]float64, cfg.Size)

	parallelFor(cfg.Workers, cfg.Size, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			a[i] = 1.0
			b[i] = 2.0
			c[i] = 0.0
		}
	})

	slog.Debug("stream workload initialized",
		"size", cfg.Size, "workers", cfg.Workers, "bytes", 3*int64(cfg.Size)*elementSize)

	var times [numKernels][]time.Duration
	for trial := 0; trial < cfg.Trials; trial++ {
		for k := Copy; k < numKernels; k++ {
			start := time.Now()
			parallelFor(cfg.Workers, cfg.Size, func(lo, hi int) {
				k.apply(a, b, c, cfg.Scalar, lo, hi)
			})
			elapsed := time.Since(start)

			observe(a[cfg.Size-1])
			times[k] = append(times[k], elapsed)
		}
		slog.Debug("stream trial complete", "trial", trial)
	}

	return buildReport(cfg, times), nil
}

// buildReport derives per-kernel statistics from raw trial times,
// excluding trial 0. The minimum time carries the least scheduler and
// OS interference, so the best rate is computed from it.
func buildReport(cfg Config, times [numKernels][]time.Duration) *Report {
	rep := &Report{Size: cfg.Size, Trials: cfg.Trials, Workers: cfg.Workers}
	for k := Copy; k < numKernels; k++ {
		s := benchmark.Summarize(times[k][1:])
		rep.Kernels[k] = KernelResult{
			Kernel:   k,
			Name:     k.String(),
			BestRate: float64(k.BytesMoved(cfg.Size)) / s.Min.Seconds() / 1e6,
			AvgTime:  s.Avg.Seconds(),
			MinTime:  s.Min.Seconds(),
			MaxTime:  s.Max.Seconds(),
		}
	}
	return rep
}
