package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"perfprobe/internal/benchmark"
)

// NewHistoryCmd builds the command that lists persisted runs.
func NewHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved benchmark runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return fmt.Errorf("failed to open history store: %w", err)
			}
			defer store.Close()

			runs, err := store.LoadAll()
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
				return nil
			}

			if limit > 0 && len(runs) > limit {
				runs = runs[len(runs)-limit:]
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "WHEN\tHOST\tKIND\tHEADLINE")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), r.Host, r.Kind, formatHeadline(r))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "show at most this many recent runs (0 = all)")

	return cmd
}

func formatHeadline(r benchmark.Run) string {
	switch r.Kind {
	case benchmark.KindStream:
		return fmt.Sprintf("%.1f MB/s", r.Headline)
	case benchmark.KindFlops:
		return fmt.Sprintf("%.2f GFLOPS", r.Headline)
	default:
		return fmt.Sprintf("%.2f", r.Headline)
	}
}

func init() {
	rootCmd.AddCommand(NewHistoryCmd())
}
