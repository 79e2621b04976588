package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if
// any are invalid. Called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if viper.IsSet("stream.size") {
		if size := viper.GetInt("stream.size"); size <= 0 {
			errors = append(errors, fmt.Sprintf("stream.size must be positive, got: %d", size))
		}
	}

	// The first stream trial is discarded as warm-up, so fewer than two
	// trials would leave nothing to report.
	if viper.IsSet("stream.trials") {
		if trials := viper.GetInt("stream.trials"); trials < 2 {
			errors = append(errors, fmt.Sprintf("stream.trials must be at least 2, got: %d", trials))
		}
	}

	if viper.IsSet("stream.workers") {
		if workers := viper.GetInt("stream.workers"); workers <= 0 {
			errors = append(errors, fmt.Sprintf("stream.workers must be positive, got: %d", workers))
		}
	}

	if viper.IsSet("flops.size") {
		if n := viper.GetInt("flops.size"); n <= 0 {
			errors = append(errors, fmt.Sprintf("flops.size must be positive, got: %d", n))
		}
	}

	if viper.IsSet("flops.trials") {
		if trials := viper.GetInt("flops.trials"); trials <= 0 {
			errors = append(errors, fmt.Sprintf("flops.trials must be positive, got: %d", trials))
		}
	}

	// metrics_port 0 disables the metrics server.
	if viper.IsSet("metrics_port") {
		if port := viper.GetInt("metrics_port"); port < 0 || port > 65535 {
			errors = append(errors, fmt.Sprintf("metrics_port must be between 0 and 65535, got: %d", port))
		}
	}

	if viper.IsSet("history.backend") {
		if backend := viper.GetString("history.backend"); backend != "sqlite" && backend != "json" {
			errors = append(errors, fmt.Sprintf("history.backend must be sqlite or json, got: %q", backend))
		}
	}

	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}
