package commands

import (
	"runtime"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/idelchi/xorpipe/internal/config"
	"github.com/idelchi/xorpipe/internal/logic"
)

// NewBatchCommand creates a new cobra command for the batch subcommand.
func NewBatchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [flags] [files/directories...]",
		Short: "Run the pipeline over many source documents",
		Long: `Writes <file><encrypt-ext> and <file><decrypt-ext> for every source.
Directories are walked; --include and --exclude match base names.
--from adds sources listed in a JSONC array file.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE: runE(cfg, func(cmd *cobra.Command, logger hclog.Logger) error {
			_, err := logic.RunBatch(cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())

			return err
		}),
	}

	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().Bool("stats", false, "Print processing statistics")
	cmd.Flags().StringSlice("include", nil, "Base-name patterns to select inside directories")
	cmd.Flags().StringSlice("exclude", nil, "Base-name patterns to skip inside directories")
	cmd.Flags().StringSlice("from", nil, "JSONC files listing additional sources")
	cmd.Flags().String("encrypt-ext", cfg.Suffixes.Encrypt, "Suffix for encrypted documents")
	cmd.Flags().String("decrypt-ext", cfg.Suffixes.Decrypt, "Suffix for decrypted documents")

	return cmd
}
