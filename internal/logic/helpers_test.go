package logic_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/xorpipe/internal/config"
	"github.com/idelchi/xorpipe/internal/store"
)

const pirateText = "Jane Doe\nhttps://pirateipsum.me/\n" +
	"Fire in the hole bowsprit Jack Tar gally holystone sloop grog heave to grapple Sea Legs.\n" +
	"Hulk coffer doubloon Shiver me timbers long clothes skysail Nelsons folly.\n"

func fixedClock() time.Time {
	return time.Date(2024, time.March, 1, 9, 30, 0, 0, time.Local)
}

func withClock() store.Option {
	return store.WithClock(fixedClock)
}

func testLogger(logs *bytes.Buffer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{Name: "logic_test", Output: logs, Level: hclog.Trace})
}

// testConfig returns a default configuration with all documents inside dir.
func testConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.Paths = config.Paths{
		Input:     filepath.Join(dir, config.DefaultInput),
		Encrypted: filepath.Join(dir, config.DefaultEncrypted),
		Decrypted: filepath.Join(dir, config.DefaultDecrypted),
	}

	return &cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}
