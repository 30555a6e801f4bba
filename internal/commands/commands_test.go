package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/xorpipe/internal/bounded"
	"github.com/idelchi/xorpipe/internal/commands"
	"github.com/idelchi/xorpipe/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfg := config.Default()
	root := commands.NewRootCommand(&cfg, "test")

	var stdout, stderr bytes.Buffer

	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func docPaths(dir string) []string {
	return []string{
		"--input", filepath.Join(dir, "in.txt"),
		"--encrypted", filepath.Join(dir, "enc.txt"),
		"--decrypted", filepath.Join(dir, "dec.txt"),
	}
}

func TestRunThenVerify(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.txt"), []byte("Jane Doe\nhello\n"), 0o600))

	out, _, err := execute(t, "", append([]string{"run", "--key", "s3cret"}, docPaths(dir)...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Read File: "+filepath.Join(dir, "in.txt"))

	enc, err := os.ReadFile(filepath.Join(dir, "enc.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(enc), "Jane Doe\n"))
	assert.Contains(t, string(enc), "\ns3cret\n")

	out, _, err = execute(t, "", append([]string{"verify"}, docPaths(dir)...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Verified")
}

func TestKeyFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XORPIPE_KEY", "from-env")

	_, _, err := execute(t, "", append([]string{"run", "-q"}, docPaths(dir)...)...)
	require.NoError(t, err)

	dec, err := os.ReadFile(filepath.Join(dir, "dec.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(dec), "\nfrom-env\n")
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "xorpipe.env")
	require.NoError(t, os.WriteFile(envFile, []byte("XORPIPE_ACCOUNT=Snoopy7\n"), 0o600))

	t.Cleanup(func() { os.Unsetenv("XORPIPE_ACCOUNT") })

	out, _, err := execute(t, "ok\n", "account", "--env-file", envFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Account Number = Snoopy7")
}

func TestAccountExhausted(t *testing.T) {
	long := strings.Repeat("x", 40) + "\n"

	out, stderr, err := execute(t, long+long+long, "account")
	require.ErrorIs(t, err, bounded.ErrAttemptsExhausted)

	assert.Contains(t, out, "Too many tries!")
	assert.NotContains(t, out, "You entered")
	assert.Contains(t, stderr, "too many attempts")
}

func TestAccountCapacityFlag(t *testing.T) {
	out, _, err := execute(t, "abcd\nabc\n", "account", "--capacity", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "You entered: abc\n")
	assert.Contains(t, out, "too much data")
}

func TestInvalidConfiguration(t *testing.T) {
	_, _, err := execute(t, "", "run", "--key", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--key is a required field")
}

func TestShow(t *testing.T) {
	out, _, err := execute(t, "", "run", "--show", "--key", "hunter2")
	require.NoError(t, err)
	assert.Contains(t, out, "hu***")
	assert.NotContains(t, out, "hunter2")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("Jane\nbody\n"), 0o600))

	out, stderr, err := execute(t, "", "batch", "-j", "2", "--stats", "--encrypt-ext", ".x", "--decrypt-ext", ".y", dir)
	require.NoError(t, err)
	assert.Contains(t, out, src+".x")
	assert.Contains(t, stderr, "Processed: 1")

	_, err = os.Stat(src + ".y")
	require.NoError(t, err)
}

func TestDecryptedOverInputRejected(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("Jane Doe\nhello\n"), 0o600))

	_, _, err := execute(t, "", "run",
		"--input", in,
		"--encrypted", filepath.Join(dir, "enc.txt"),
		"--decrypted", in,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--decrypted cannot be equal to Input")

	data, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nhello\n", string(data))
}

func TestVerifyMissingInputUsesFallback(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "", append([]string{"run", "-q"}, docPaths(dir)...)...)
	require.NoError(t, err)

	out, _, err := execute(t, "", append([]string{"verify"}, docPaths(dir)...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Verified")
}
