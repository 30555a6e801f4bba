package commands

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/idelchi/xorpipe/internal/config"
	"github.com/idelchi/xorpipe/internal/logic"
)

// NewAccountCommand creates a new cobra command for the account subcommand.
func NewAccountCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "account [flags]",
		Aliases: []string{"acc"},
		Short:   "Read one bounded line of input",
		Long: `Prompts for a value that must fit in the buffer (capacity minus one characters).
Longer input is rejected and the prompt repeats; after the last attempt the command fails.`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE: runE(cfg, func(cmd *cobra.Command, logger hclog.Logger) error {
			return logic.RunAccount(cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		}),
	}

	cmd.Flags().Int("capacity", cfg.Capacity, "Buffer size including the terminator slot")
	cmd.Flags().Int("attempts", cfg.Attempts, "Number of tries before giving up")
	cmd.Flags().String("account", cfg.Account, "Account number printed after a valid entry")

	return cmd
}
