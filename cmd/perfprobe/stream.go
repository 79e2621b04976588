package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"perfprobe/internal/benchmark"
	"perfprobe/internal/report"
	"perfprobe/internal/stream"
)

// NewStreamCmd builds the memory-bandwidth benchmark command.
func NewStreamCmd() *cobra.Command {
	var (
		size      int
		trials    int
		workers   int
		save      bool
		compare   bool
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Measure sustained memory bandwidth (STREAM Copy/Scale/Add/Triad)",
		Long: `Runs the four STREAM kernels over three large float64 arrays and reports
the best rate per kernel plus an overall memory-bandwidth figure taken
from the Triad kernel. The combined working set must exceed the CPU
caches for the numbers to mean anything; the default (three 640 MB
arrays) is sized accordingly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := stream.Config{
				Size:    viper.GetInt("stream.size"),
				Trials:  viper.GetInt("stream.trials"),
				Workers: viper.GetInt("stream.workers"),
			}
			if cmd.Flags().Changed("size") {
				cfg.Size = size
			}
			if cmd.Flags().Changed("trials") {
				cfg.Trials = trials
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}

			start := time.Now()
			rep, err := stream.Run(cfg)
			if probeMetrics != nil {
				probeMetrics.ObserveRun("stream", time.Since(start), err)
			}
			if err != nil {
				return err
			}

			report.WriteStream(cmd.OutOrStdout(), rep)

			if probeMetrics != nil {
				probeMetrics.TriadBandwidthGBs.Set(rep.BandwidthGBs())
			}

			return saveAndCompare(cmd, newRunRecord(benchmark.KindStream, rep.BestTriadMBs(), rep), save, compare, threshold)
		},
	}

	cmd.Flags().IntVar(&size, "size", stream.DefaultSize, "elements per array")
	cmd.Flags().IntVar(&trials, "trials", stream.DefaultTrials, "timed repetitions, first one discarded")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines per kernel (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the run to history")
	cmd.Flags().BoolVar(&compare, "compare", false, "Compare against the previous saved run")
	cmd.Flags().Float64Var(&threshold, "threshold", 10.0, "Percentage drop treated as a regression")

	return cmd
}

func init() {
	rootCmd.AddCommand(NewStreamCmd())
}
