// Package report renders benchmark results for humans and writes the
// per-node characterization file.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"perfprobe/internal/flops"
	"perfprobe/internal/stream"
)

const mib = 1024.0 * 1024.0

// WriteStream renders a bandwidth report in the classic STREAM layout:
// header with workload sizing and worker count, one row per kernel,
// then the headline Triad bandwidth.
func WriteStream(w io.Writer, r *stream.Report) {
	fmt.Fprintln(w, "=== Memory Bandwidth Benchmark (STREAM) ===")
	fmt.Fprintf(w, "Array size: %d elements (%.1f MB per array)\n", r.Size, float64(r.ArrayBytes())/mib)
	fmt.Fprintf(w, "Total memory: %.1f MB\n", float64(r.TotalBytes())/mib)
	fmt.Fprintf(w, "Workers: %d\n", r.Workers)
	fmt.Fprintf(w, "Trials: %d (first discarded as warm-up)\n\n", r.Trials)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "FUNCTION\tBEST RATE (MB/S)\tAVG TIME (S)\tMIN TIME (S)\tMAX TIME (S)")
	for _, kr := range r.Kernels {
		fmt.Fprintf(tw, "%s\t%.1f\t%.6f\t%.6f\t%.6f\n",
			kr.Name, kr.BestRate, kr.AvgTime, kr.MinTime, kr.MaxTime)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nMemory bandwidth (Triad best): %.2f GB/s\n", r.BandwidthGBs())
}

// WriteFlops renders a compute report: per-trial times and rates, then
// the average and peak figures.
func WriteFlops(w io.Writer, r *flops.Report) {
	fmt.Fprintln(w, "=== Peak FLOPS Benchmark (DGEMM) ===")
	fmt.Fprintf(w, "Matrix size: %d x %d\n", r.N, r.N)
	fmt.Fprintf(w, "Trials: %d\n", r.Trials)
	fmt.Fprintf(w, "Backend: %s\n\n", r.Backend)

	for i, tr := range r.Results {
		fmt.Fprintf(w, "  Trial %d: %.3f seconds, %.2f GFLOPS\n", i+1, tr.ElapsedSeconds, tr.GFLOPS)
	}

	fmt.Fprintf(w, "\nAverage time: %.3f seconds\n", r.AvgTimeSeconds)
	fmt.Fprintf(w, "Average GFLOPS: %.2f\n", r.AvgGFLOPS)
	fmt.Fprintf(w, "Peak GFLOPS: %.2f\n", r.PeakGFLOPS)
}
