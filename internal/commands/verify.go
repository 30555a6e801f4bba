package commands

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/idelchi/xorpipe/internal/config"
	"github.com/idelchi/xorpipe/internal/logic"
)

// NewVerifyCommand creates a new cobra command for the verify subcommand.
func NewVerifyCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "verify [flags]",
		Short: "Check persisted documents against the input document",
		Long: `Reads the encrypted and decrypted documents, reverses the encrypted payload with
the key stored in it, and compares both with the input document. An unreadable
input is replaced by the same built-in text run falls back to.`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE: runE(cfg, func(cmd *cobra.Command, logger hclog.Logger) error {
			return logic.RunVerify(cfg, logger, cmd.OutOrStdout())
		}),
	}
}
