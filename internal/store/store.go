package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/idelchi/xorpipe/internal/cipher"
	"github.com/idelchi/xorpipe/internal/fileutil"
)

// DefaultFallback is returned by FallbackOnReadFailure when the source cannot be read.
const DefaultFallback = "John Q. Smith\nThis is my test string"

// Store reads and writes documents.
type Store struct {
	logger   hclog.Logger
	clock    func() time.Time
	fallback string
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for the date line.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithFallback sets the text substituted for unreadable sources.
func WithFallback(text string) Option {
	return func(s *Store) {
		s.fallback = text
	}
}

// New creates a Store logging to logger. A nil logger discards diagnostics.
func New(logger hclog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &Store{
		logger:   logger,
		clock:    time.Now,
		fallback: DefaultFallback,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Stamp builds a document dated with the store's clock, in local time.
func (s *Store) Stamp(identity, key string, payload []byte) Document {
	return Document{
		Identity: identity,
		Date:     s.clock().Local().Format(DateLayout),
		Key:      key,
		Payload:  payload,
	}
}

// Read returns the whole content of path with line breaks preserved.
func (s *Store) Read(path string) (string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}

	return string(data), nil
}

// ReadDocument reads and parses a persisted document.
func (s *Store) ReadDocument(path string) (Document, error) {
	text, err := s.Read(path)
	if err != nil {
		return Document{}, err
	}

	doc, err := Parse([]byte(text))
	if err != nil {
		return Document{}, fmt.Errorf("parsing %q: %w", path, err)
	}

	return doc, nil
}

// Write atomically replaces path with doc and returns the number of bytes written.
func (s *Store) Write(path string, doc Document) (int64, error) {
	return s.write(path, doc, func(w io.Writer) error {
		_, err := w.Write(doc.Payload)

		return err
	})
}

// WriteStream writes doc's header followed by payload transformed with key.
// doc.Payload is ignored. An empty payload is rejected with cipher.ErrInvalidArgument
// and leaves nothing on disk.
func (s *Store) WriteStream(path string, doc Document, payload io.Reader, key []byte) (int64, error) {
	return s.write(path, doc, func(w io.Writer) error {
		cw, err := cipher.NewWriter(w, key)
		if err != nil {
			return err
		}

		if _, err := io.Copy(cw, payload); err != nil {
			return fmt.Errorf("streaming payload: %w", err)
		}

		if cw.Written() == 0 {
			return fmt.Errorf("%w: empty source", cipher.ErrInvalidArgument)
		}

		return nil
	})
}

func (s *Store) write(path string, doc Document, body func(io.Writer) error) (size int64, err error) {
	tc, err := fileutil.NewTempContext(path)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}

	defer tc.CleanupOnError(&err)

	buffered := bufio.NewWriter(tc.TmpFile)

	if _, err = buffered.WriteString(doc.header()); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	if err = body(buffered); err != nil {
		return 0, err
	}

	if err = buffered.WriteByte('\n'); err != nil {
		return 0, fmt.Errorf("writing payload terminator: %w", err)
	}

	if err = buffered.Flush(); err != nil {
		return 0, fmt.Errorf("flushing %q: %w", path, err)
	}

	size, err = tc.Commit()
	if err != nil {
		return 0, fmt.Errorf("committing %q: %w", path, err)
	}

	return size, nil
}
