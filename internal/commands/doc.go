// Package commands provides the command-line interface for the xorpipe tool.
//
// It implements commands for:
//   - the file pipeline (run)
//   - the bounded input exercise (account)
//   - batch processing of many sources (batch)
//   - verification of persisted documents (verify)
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/xorpipe/internal/config"
	"github.com/idelchi/xorpipe/internal/logging"
)

const envPrefix = "xorpipe"

// bind loads the optional env file, then merges flags and XORPIPE_* variables into cfg.
func bind(v *viper.Viper, cmd *cobra.Command, cfg *config.Config) error {
	if path, _ := cmd.Flags().GetString("env-file"); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading env file %q: %w", path, err)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}

// preRun returns a PreRunE handler that stores positional args and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Sources = args

		return cfg.Validate()
	}
}

// runE wraps a command body so that --show prints the configuration instead of running it.
func runE(cfg *config.Config, body func(cmd *cobra.Command, logger hclog.Logger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if cfg.Show {
			return cfg.Display(cmd.OutOrStdout())
		}

		logger := logging.ForRun(logging.NewLogger("xorpipe", cfg.LogLevel, cmd.ErrOrStderr()))

		return body(cmd, logger)
	}
}
