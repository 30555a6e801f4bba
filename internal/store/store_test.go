package store_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/xorpipe/internal/cipher"
	"github.com/idelchi/xorpipe/internal/store"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local)
}

func newStore(logs *bytes.Buffer) *store.Store {
	logger := hclog.New(&hclog.LoggerOptions{Name: "store_test", Output: logs, Level: hclog.Trace})

	return store.New(logger, store.WithClock(fixedClock))
}

func TestBestEffortWriteFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")

	outcome := store.New(nil).BestEffortWrite(path, "Jane", "key1", []byte("payload"))
	require.True(t, outcome.OK(), "write error: %v", outcome.Err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "Jane", lines[0])
	assert.Equal(t, time.Now().Format("2006-01-02"), lines[1])
	assert.Equal(t, "key1", lines[2])
	assert.Equal(t, "payload", lines[3])
	assert.Equal(t, int64(len(data)), outcome.Size)
}

func TestWriteUsesClock(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	path := filepath.Join(t.TempDir(), "out.txt")

	outcome := newStore(&logs).BestEffortWrite(path, "Jane", "key1", []byte("payload"))
	require.NoError(t, outcome.Err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane\n2024-03-01\nkey1\npayload\n", string(data))
}

func TestWriteReadDocumentBinaryPayload(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	s := newStore(&logs)
	path := filepath.Join(t.TempDir(), "enc.txt")

	payload, err := cipher.Transform([]byte("John Q. Smith\nThis is my test string"), []byte("password"))
	require.NoError(t, err)

	doc := s.Stamp("John Q. Smith", "password", payload)

	_, err = s.Write(path, doc)
	require.NoError(t, err)

	got, err := s.ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestWriteStreamMatchesTransform(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	s := newStore(&logs)
	dir := t.TempDir()
	source := "Jane Doe\nFire in the hole bowsprit\nJack Tar gally"
	key := []byte("password")

	_, err := s.WriteStream(filepath.Join(dir, "stream.txt"), s.Stamp("Jane Doe", "password", nil), strings.NewReader(source), key)
	require.NoError(t, err)

	got, err := s.ReadDocument(filepath.Join(dir, "stream.txt"))
	require.NoError(t, err)

	want, err := cipher.Transform([]byte(source), key)
	require.NoError(t, err)
	assert.Equal(t, want, got.Payload)
}

func TestWriteStreamEmptySource(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	dir := t.TempDir()
	s := newStore(&logs)

	_, err := s.WriteStream(filepath.Join(dir, "empty.txt"), s.Stamp("", "k", nil), strings.NewReader(""), []byte("k"))
	require.ErrorIs(t, err, cipher.ErrInvalidArgument)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed stream must leave nothing behind")
}

func TestBestEffortWriteFailure(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	path := filepath.Join(t.TempDir(), "missing", "out.txt")

	outcome := newStore(&logs).BestEffortWrite(path, "Jane", "key1", []byte("payload"))
	require.False(t, outcome.OK())
	require.ErrorIs(t, outcome.Err, store.ErrOpen)
	require.ErrorIs(t, outcome.Err, os.ErrNotExist)

	assert.Equal(t, path, outcome.Path)
	assert.Zero(t, outcome.Size)
	assert.Contains(t, logs.String(), path)
	assert.Contains(t, logs.String(), "no such file or directory")

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFallbackOnReadFailureMissing(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	path := filepath.Join(t.TempDir(), "nope.txt")

	outcome := newStore(&logs).FallbackOnReadFailure(path)

	assert.True(t, outcome.FellBack)
	require.ErrorIs(t, outcome.Err, store.ErrOpen)
	assert.Equal(t, store.DefaultFallback, outcome.Text)
	assert.Contains(t, logs.String(), path)
}

func TestFallbackOnReadFailureCustomText(t *testing.T) {
	t.Parallel()

	s := store.New(nil, store.WithFallback("Someone\nelse"))

	outcome := s.FallbackOnReadFailure(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, "Someone\nelse", outcome.Text)
}

func TestFallbackOnReadFailureExisting(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	path := filepath.Join(t.TempDir(), "in.txt")
	content := "Jane Doe\nline two\r\nline three\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	outcome := newStore(&logs).FallbackOnReadFailure(path)

	assert.False(t, outcome.FellBack)
	require.NoError(t, outcome.Err)
	assert.Equal(t, content, outcome.Text)
	assert.Empty(t, logs.String())
}
