package logic

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats summarises a batch run.
type Stats struct {
	Scanned   int
	Excluded  int
	Processed int
	Errored   int
	TotalSize int64
	Duration  time.Duration
}

func printStats(w io.Writer, stats Stats) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", stats.Scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", stats.Excluded)
	fmt.Fprintf(w, "  Processed: %d\n", stats.Processed)
	fmt.Fprintf(w, "  Errors:    %d\n", stats.Errored)
	//nolint:gosec // TotalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, stats.TotalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", stats.Duration.Round(time.Millisecond))
}
