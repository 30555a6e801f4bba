package logic

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/idelchi/xorpipe/internal/bounded"
	"github.com/idelchi/xorpipe/internal/config"
)

// RunAccount asks for one bounded line and echoes it next to the account number.
// When every attempt overflows it returns an error wrapping bounded.ErrAttemptsExhausted.
func RunAccount(cfg *config.Config, logger hclog.Logger, in io.Reader, out io.Writer) error {
	if !cfg.Quiet {
		fmt.Fprintln(out, "Buffer Overflow Example")
	}

	prompt := &bounded.Prompt{
		Reader:   bounded.NewReader(in, cfg.Capacity),
		Out:      out,
		Message:  "Enter a value: ",
		Attempts: cfg.Attempts,
		Logger:   logger,
	}

	line, err := prompt.Capture()
	if err != nil {
		return fmt.Errorf("reading account input: %w", err)
	}

	fmt.Fprintf(out, "You entered: %s\n", line)
	fmt.Fprintf(out, "Account Number = %s\n", cfg.Account)

	return nil
}
