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

// RunVerify checks that the encrypted and decrypted documents reproduce the source.
// The source is loaded the same way Run loads it, so an unreadable input is compared
// against the fallback text. The encrypted payload is reversed with the key recorded
// in the document itself.
func RunVerify(cfg *config.Config, logger hclog.Logger, out io.Writer, opts ...store.Option) error {
	docs := store.New(logger, opts...)

	source := docs.FallbackOnReadFailure(cfg.Paths.Input).Text

	identity := store.ExtractIdentity(source)

	encrypted, err := docs.ReadDocument(cfg.Paths.Encrypted)
	if err != nil {
		return fmt.Errorf("reading encrypted document: %w", err)
	}

	recovered, err := cipher.Transform(encrypted.Payload, []byte(encrypted.Key))
	if err != nil {
		return fmt.Errorf("decrypting %q: %w", cfg.Paths.Encrypted, err)
	}

	var failures int

	failures += compare(logger, cfg.Paths.Encrypted, identity, []byte(source), encrypted.Identity, recovered)

	decrypted, err := docs.ReadDocument(cfg.Paths.Decrypted)
	if err != nil {
		return fmt.Errorf("reading decrypted document: %w", err)
	}

	failures += compare(logger, cfg.Paths.Decrypted, identity, []byte(source), decrypted.Identity, decrypted.Payload)

	if failures > 0 {
		return fmt.Errorf("%w: %d mismatch(es) against %q", ErrVerifyMismatch, failures, cfg.Paths.Input)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Verified %s and %s against %s (%s, key %q, %d bytes)\n",
			cfg.Paths.Encrypted, cfg.Paths.Decrypted, cfg.Paths.Input, encrypted.Date, encrypted.Key, len(source))
	}

	return nil
}

// compare logs each difference between a document and its source and returns how many were found.
func compare(logger hclog.Logger, path, wantIdentity string, want []byte, gotIdentity string, got []byte) int {
	var failures int

	if gotIdentity != wantIdentity {
		logger.Error("identity mismatch", "path", path, "want", wantIdentity, "got", gotIdentity)

		failures++
	}

	if !bytes.Equal(got, want) {
		logger.Error("payload mismatch", "path", path, "want_bytes", len(want), "got_bytes", len(got))

		failures++
	}

	return failures
}
