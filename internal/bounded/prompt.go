package bounded

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultAttempts is how many overflowing lines are tolerated before giving up.
	DefaultAttempts = 3

	overflowNotice  = "\n\t***Error: you entered too much data!***\n\n"
	exhaustedNotice = "\tToo many tries!\n"
)

// Prompt asks for a line until one fits or the attempts run out.
type Prompt struct {
	// Reader supplies the lines.
	Reader *Reader
	// Out receives the prompt message and the user-facing notices.
	Out io.Writer
	// Message is written before every attempt.
	Message string
	// Attempts caps the number of tries; values below 1 mean DefaultAttempts.
	Attempts int
	// Logger receives the diagnostics; nil disables them.
	Logger hclog.Logger
}

// Capture returns the first line that fits.
// After the last overflowing attempt it returns an error wrapping ErrAttemptsExhausted.
func (p *Prompt) Capture() (string, error) {
	logger := p.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	attempts := p.Attempts
	if attempts < 1 {
		attempts = DefaultAttempts
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		fmt.Fprint(p.Out, p.Message)

		line, err := p.Reader.ReadLine()

		switch {
		case err == nil:
			return line, nil
		case errors.Is(err, ErrOverflow):
			fmt.Fprint(p.Out, overflowNotice)
			logger.Warn("input rejected", "attempt", attempt, "of", attempts, "capacity", p.Reader.Capacity(), "error", err)
		case errors.Is(err, io.EOF):
			return "", fmt.Errorf("reading line: %w", ErrNoInput)
		default:
			return "", fmt.Errorf("reading line: %w", err)
		}
	}

	fmt.Fprint(p.Out, exhaustedNotice)
	logger.Error("giving up on input", "attempts", attempts)

	return "", fmt.Errorf("%w: %d attempts overflowed", ErrAttemptsExhausted, attempts)
}
