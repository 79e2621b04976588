package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"perfprobe/internal/benchmark"
)

// openHistory returns the configured run store. The sqlite backend is
// the default; history.backend=json selects the flat-file store.
func openHistory() (benchmark.Store, error) {
	dir := viper.GetString("history.path")
	switch viper.GetString("history.backend") {
	case "json":
		return benchmark.NewFileStore(filepath.Join(dir, "history.json"))
	default:
		return benchmark.NewSQLiteStore(filepath.Join(dir, "history.db"))
	}
}

// newRunRecord packages a probe report for persistence.
func newRunRecord(kind benchmark.Kind, headline float64, details any) benchmark.Run {
	host, _ := os.Hostname()
	payload, _ := json.Marshal(details)
	return benchmark.Run{
		Timestamp: time.Now(),
		Host:      host,
		Kind:      kind,
		Headline:  headline,
		Details:   payload,
	}
}

// saveAndCompare applies the shared --save/--compare/--threshold flag
// behavior to a finished run.
func saveAndCompare(cmd *cobra.Command, run benchmark.Run, save, compare bool, threshold float64) error {
	if !save && !compare {
		return nil
	}

	store, err := openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	if compare {
		prev, err := store.LoadLatest(run.Kind)
		if err != nil {
			return fmt.Errorf("failed to load previous run: %w", err)
		}
		if prev == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "\nNo previous run to compare against.")
		} else {
			comp := benchmark.Compare(*prev, run)
			fmt.Fprintf(cmd.OutOrStdout(), "\nVersus previous run: %s\n", comp)
			if comp.Regression(threshold) {
				fmt.Fprintf(cmd.OutOrStdout(), "WARNING: throughput dropped more than %.1f%%\n", threshold)
			}
		}
	}

	if save {
		if err := store.Save(run); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Run saved to history.")
	}

	return nil
}
