package benchmark

import (
	"encoding/json"
	"time"
)

// Kind labels which probe produced a run.
type Kind string

const (
	KindStream Kind = "stream"
	KindFlops  Kind = "flops"
)

// Run is one persisted benchmark execution.
type Run struct {
	ID        int64     `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Host      string    `json:"host,omitempty"`
	Kind      Kind      `json:"kind"`
	// Headline is the figure used for comparisons: best Triad rate in
	// MB/s for stream runs, peak GFLOPS for flops runs.
	Headline float64 `json:"headline"`
	// Details holds the full report as produced by the probe.
	Details json.RawMessage `json:"details,omitempty"`
}
