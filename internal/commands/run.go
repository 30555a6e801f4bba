package commands

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/idelchi/xorpipe/internal/config"
	"github.com/idelchi/xorpipe/internal/logic"
)

// NewRunCommand creates a new cobra command for the run subcommand.
func NewRunCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "run [flags]",
		Short: "Encrypt the input document, then decrypt it again",
		Long: `Reads the input document (falling back to a built-in text if it cannot be read),
takes its first line as identity, and writes the encrypted and decrypted documents.
Failed writes are reported but do not stop the pipeline.`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE: runE(cfg, func(cmd *cobra.Command, logger hclog.Logger) error {
			_, err := logic.Run(cfg, logger, cmd.OutOrStdout())

			return err
		}),
	}
}
