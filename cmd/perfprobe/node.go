package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"perfprobe/internal/flops"
	"perfprobe/internal/report"
	"perfprobe/internal/stream"
	"perfprobe/internal/sysinfo"
)

// NewNodeCmd builds the node characterization command: both probes plus
// host facts, merged into a per-host YAML file.
func NewNodeCmd() *cobra.Command {
	var (
		output     string
		skipStream bool
		skipFlops  bool
	)

	cmd := &cobra.Command{
		Use:   "node",
		Short: "Run both probes and write a node characterization file",
		Long: `Collects CPU and memory facts, runs the bandwidth and FLOPS probes with
the configured sizes, and merges the headline figures into
node_<hostname>.yaml. Keys written by other tooling survive the merge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			info := sysinfo.Collect()

			fmt.Fprintf(out, "=== Node Benchmark: %s ===\n", info.Hostname)
			fmt.Fprintf(out, "OS: %s/%s\n", info.OS, info.Arch)
			fmt.Fprintf(out, "CPU: %s (%d cores", info.CPUModel, info.Cores)
			if info.MHz > 0 {
				fmt.Fprintf(out, ", %.0f MHz", info.MHz)
			}
			fmt.Fprintln(out, ")")
			fmt.Fprintln(out)

			var streamRep *stream.Report
			if !skipStream {
				start := time.Now()
				rep, err := stream.Run(stream.Config{
					Size:    viper.GetInt("stream.size"),
					Trials:  viper.GetInt("stream.trials"),
					Workers: viper.GetInt("stream.workers"),
				})
				if probeMetrics != nil {
					probeMetrics.ObserveRun("stream", time.Since(start), err)
				}
				if err != nil {
					return err
				}
				streamRep = rep
				report.WriteStream(out, rep)
				fmt.Fprintln(out)
				if probeMetrics != nil {
					probeMetrics.TriadBandwidthGBs.Set(rep.BandwidthGBs())
				}
			}

			var flopsRep *flops.Report
			if !skipFlops {
				start := time.Now()
				rep, err := flops.Run(flops.Config{
					N:      viper.GetInt("flops.size"),
					Trials: viper.GetInt("flops.trials"),
					Seed:   viper.GetInt64("flops.seed"),
				})
				if probeMetrics != nil {
					probeMetrics.ObserveRun("flops", time.Since(start), err)
				}
				if err != nil {
					return err
				}
				flopsRep = rep
				report.WriteFlops(out, rep)
				fmt.Fprintln(out)
				if probeMetrics != nil {
					probeMetrics.PeakGFLOPS.Set(rep.PeakGFLOPS)
				}
			}

			path := output
			if path == "" {
				path = report.NodeFile(info.Hostname)
			}
			if err := report.WriteNode(path, info, streamRep, flopsRep); err != nil {
				return err
			}
			fmt.Fprintf(out, "Results saved: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "node file path (default node_<hostname>.yaml)")
	cmd.Flags().BoolVar(&skipStream, "skip-stream", false, "Skip the bandwidth probe")
	cmd.Flags().BoolVar(&skipFlops, "skip-flops", false, "Skip the FLOPS probe")

	return cmd
}

func init() {
	rootCmd.AddCommand(NewNodeCmd())
}
