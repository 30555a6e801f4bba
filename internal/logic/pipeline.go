// Package logic implements the encrypt/decrypt pipelines and the bounded input exercise.
package logic

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/idelchi/xorpipe/internal/cipher"
	"github.com/idelchi/xorpipe/internal/config"
	"github.com/idelchi/xorpipe/internal/store"
)

// Report describes one pass of the file pipeline.
type Report struct {
	Input     string
	Encrypted string
	Decrypted string

	// Identity is the first line of the source, as persisted in both documents.
	Identity string

	Load           store.ReadOutcome
	EncryptedWrite store.WriteOutcome
	DecryptedWrite store.WriteOutcome

	// RoundTrip is set when decrypting the encrypted payload gave back the source.
	RoundTrip bool
}

// Run loads the source, encrypts it, persists it, decrypts it and persists it again.
//
// An unreadable source is replaced by the fallback text and failed writes are
// only logged, so Run completes unless the cipher rejects its input.
func Run(cfg *config.Config, logger hclog.Logger, out io.Writer, opts ...store.Option) (Report, error) {
	docs := store.New(logger, opts...)
	key := []byte(cfg.Key)

	report := Report{
		Input:     cfg.Paths.Input,
		Encrypted: cfg.Paths.Encrypted,
		Decrypted: cfg.Paths.Decrypted,
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "Encryption Decryption Test!")
	}

	report.Load = docs.FallbackOnReadFailure(cfg.Paths.Input)
	source := []byte(report.Load.Text)

	report.Identity = store.ExtractIdentity(report.Load.Text)

	encrypted, err := cipher.Transform(source, key)
	if err != nil {
		return report, fmt.Errorf("encrypting %q: %w", cfg.Paths.Input, err)
	}

	report.EncryptedWrite = docs.BestEffortWrite(cfg.Paths.Encrypted, report.Identity, cfg.Key, encrypted)

	decrypted, err := cipher.Transform(encrypted, key)
	if err != nil {
		return report, fmt.Errorf("decrypting %q: %w", cfg.Paths.Input, err)
	}

	report.DecryptedWrite = docs.BestEffortWrite(cfg.Paths.Decrypted, report.Identity, cfg.Key, decrypted)

	report.RoundTrip = bytes.Equal(decrypted, source)

	logger.Debug("pipeline finished",
		"input", report.Input,
		"fallback", report.Load.FellBack,
		"encrypted_ok", report.EncryptedWrite.OK(),
		"decrypted_ok", report.DecryptedWrite.OK(),
		"round_trip", report.RoundTrip,
	)

	if !cfg.Quiet {
		fmt.Fprintf(out, "Read File: %s - Encrypted To: %s - Decrypted To: %s\n",
			report.Input, report.Encrypted, report.Decrypted)
	}

	return report, nil
}
