// Package logging builds the hclog loggers used for diagnostics.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// NewLogger creates a new hclog logger with standard settings.
// JSON output is selected with XORPIPE_JSON_LOG=1.
func NewLogger(name, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv("XORPIPE_JSON_LOG") == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ForRun returns a child logger tagged with a fresh run id.
func ForRun(logger hclog.Logger) hclog.Logger {
	return logger.With("run", uuid.NewString())
}
