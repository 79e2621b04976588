package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"perfprobe/internal/config"
	"perfprobe/internal/flops"
	"perfprobe/internal/stream"
	"perfprobe/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// probeMetrics is non-nil when the Prometheus endpoint is enabled via
// metrics_port.
var probeMetrics *telemetry.Metrics

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "perfprobe",
	Short: "Hardware performance probes: memory bandwidth and peak FLOPS",
	Long: `perfprobe characterizes a machine's performance ceiling with two probes:
a STREAM-style benchmark for sustained memory bandwidth and a DGEMM
benchmark for floating-point throughput. Runs can be persisted and
compared to catch regressions across kernel, firmware or hardware
changes.`,
	SilenceErrors: true,
}

// Execute runs the root command. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("PERFPROBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("stream.size", stream.DefaultSize)
	viper.SetDefault("stream.trials", stream.DefaultTrials)
	viper.SetDefault("stream.workers", runtime.GOMAXPROCS(0))
	viper.SetDefault("flops.size", flops.DefaultN)
	viper.SetDefault("flops.trials", flops.DefaultTrials)
	viper.SetDefault("flops.seed", flops.DefaultSeed)
	viper.SetDefault("history.backend", "sqlite")
	viper.SetDefault("history.path", ".perfprobe")
	viper.SetDefault("metrics_port", 0)
	viper.SetDefault("verbose", false)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))

	if port := viper.GetInt("metrics_port"); port > 0 {
		probeMetrics = telemetry.NewMetrics(nil)
		go func() {
			if err := telemetry.StartMetricsServer(port); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to start metrics server: %v\n", err)
			}
		}()
	}
}
