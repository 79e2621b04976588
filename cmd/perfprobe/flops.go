package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"perfprobe/internal/benchmark"
	"perfprobe/internal/flops"
	"perfprobe/internal/report"
)

// NewFlopsCmd builds the floating-point throughput benchmark command.
func NewFlopsCmd() *cobra.Command {
	var (
		trials    int
		seed      int64
		reference bool
		save      bool
		compare   bool
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "flops [n]",
		Short: "Measure floating-point throughput with a dense matrix multiply (DGEMM)",
		Long: `Multiplies two random N x N float64 matrices and reports per-trial time
and GFLOPS, plus the average and peak across trials. An accelerated
DGEMM backend is used when available; --reference forces the portable
triple-loop path. The optional positional argument overrides the matrix
dimension (default 2048).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := viper.GetInt("flops.size")
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v <= 0 {
					return fmt.Errorf("invalid matrix dimension %q: must be a positive integer", args[0])
				}
				n = v
			}

			cfg := flops.Config{
				N:      n,
				Trials: viper.GetInt("flops.trials"),
				Seed:   viper.GetInt64("flops.seed"),
			}
			if cmd.Flags().Changed("trials") {
				cfg.Trials = trials
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if reference {
				cfg.Backend = flops.Reference()
			}

			start := time.Now()
			rep, err := flops.Run(cfg)
			if probeMetrics != nil {
				probeMetrics.ObserveRun("flops", time.Since(start), err)
			}
			if err != nil {
				return err
			}

			report.WriteFlops(cmd.OutOrStdout(), rep)

			if probeMetrics != nil {
				probeMetrics.PeakGFLOPS.Set(rep.PeakGFLOPS)
			}

			return saveAndCompare(cmd, newRunRecord(benchmark.KindFlops, rep.PeakGFLOPS, rep), save, compare, threshold)
		},
	}

	cmd.Flags().IntVar(&trials, "trials", flops.DefaultTrials, "number of timed multiplies")
	cmd.Flags().Int64Var(&seed, "seed", flops.DefaultSeed, "seed for the reproducible input matrices")
	cmd.Flags().BoolVar(&reference, "reference", false, "Force the reference triple-loop path")
	cmd.Flags().BoolVar(&save, "save", false, "Save the run to history")
	cmd.Flags().BoolVar(&compare, "compare", false, "Compare against the previous saved run")
	cmd.Flags().Float64Var(&threshold, "threshold", 10.0, "Percentage drop treated as a regression")

	return cmd
}

func init() {
	rootCmd.AddCommand(NewFlopsCmd())
}
