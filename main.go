// Command xorpipe encrypts and decrypts documents with a repeating-key XOR cipher
// and runs a bounded interactive input exercise.
package main

import (
	"os"

	"github.com/idelchi/xorpipe/internal/commands"
	"github.com/idelchi/xorpipe/internal/config"
)

// Set by the build process.
var version = "unknown - unofficial & generated by unknown"

func main() {
	cfg := config.Default()

	if err := commands.NewRootCommand(&cfg, version).Execute(); err != nil {
		os.Exit(1)
	}
}
