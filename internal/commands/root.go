package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/xorpipe/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "xorpipe [flags] command [flags]",
		Short: "Repeating-key XOR document pipeline",
		Long: `Encrypts a source document with a repeating-key XOR cipher, persists the result
together with its identity line, date and key, and decrypts it again.
Also provides a bounded interactive input exercise.

Every flag can be set through an XORPIPE_ prefixed environment variable,
for example XORPIPE_KEY or XORPIPE_LOG_LEVEL.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bind(v, cmd, cfg)
		},
	}

	flags := root.PersistentFlags()

	flags.StringP("key", "k", cfg.Key, "Cipher key, stored as the third line of each document")
	flags.StringP("input", "i", cfg.Paths.Input, "Source document")
	flags.String("encrypted", cfg.Paths.Encrypted, "Encrypted document")
	flags.String("decrypted", cfg.Paths.Decrypted, "Decrypted document")
	flags.String("log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error, off)")
	flags.String("env-file", "", "Load environment variables from this file first")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("show", "s", false, "Show the configuration and exit")

	root.AddCommand(
		NewRunCommand(cfg),
		NewAccountCommand(cfg),
		NewBatchCommand(cfg),
		NewVerifyCommand(cfg),
	)

	return root
}
