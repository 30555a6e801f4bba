package cipher

import (
	"fmt"
	"io"
)

const chunkSize = 32 * 1024

// Writer applies the repeating-key transform to everything written through it.
// The key position carries over between writes, so the output matches Transform
// over the concatenated input regardless of how it was split.
// A Writer is not safe for concurrent use; each one owns its key copy and scratch buffer.
type Writer struct {
	w      io.Writer
	key    []byte
	buf    []byte
	offset int
	n      int64
}

// NewWriter wraps w. The key is copied.
func NewWriter(w io.Writer, key []byte) (*Writer, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}

	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	return &Writer{w: w, key: keyCopy}, nil
}

// Write implements io.Writer. The caller's slice is not modified.
func (sw *Writer) Write(data []byte) (int, error) {
	if sw.buf == nil {
		sw.buf = make([]byte, chunkSize)
	}

	buf := sw.buf
	written := 0

	for written < len(data) {
		end := min(written+len(buf), len(data))
		part := data[written:end]

		next := xorInto(buf, part, sw.key, sw.offset)

		n, err := sw.w.Write(buf[:len(part)])
		written += n
		sw.n += int64(n)

		if err != nil {
			return written, fmt.Errorf("writing transformed chunk: %w", err)
		}

		if n < len(part) {
			return written, io.ErrShortWrite
		}

		sw.offset = next
	}

	return written, nil
}

// Written returns the number of bytes passed through so far.
func (sw *Writer) Written() int64 {
	return sw.n
}
