package bounded

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	// DefaultCapacity is the buffer size including the terminator slot.
	DefaultCapacity = 20

	minCapacity = 2
)

// Reader reads lines of at most Capacity-1 bytes.
type Reader struct {
	r        *bufio.Reader
	buf      []byte
	capacity int
}

// NewReader wraps r. A capacity below 2 is raised to 2.
func NewReader(r io.Reader, capacity int) *Reader {
	capacity = max(capacity, minCapacity)

	return &Reader{
		r:        bufio.NewReader(r),
		buf:      make([]byte, 0, capacity-1),
		capacity: capacity,
	}
}

// Capacity returns the buffer size including the terminator slot.
func (br *Reader) Capacity() int {
	return br.capacity
}

// ReadLine returns the next line without its terminator.
//
// If the line holds more than Capacity-1 bytes, the captured part is discarded,
// the remainder of the line is consumed, and ErrOverflow is returned.
// A "\r\n" terminator is accepted. io.EOF is returned only when nothing was read.
func (br *Reader) ReadLine() (string, error) {
	br.buf = br.buf[:0]
	limit := br.capacity - 1

	for len(br.buf) < limit {
		b, err := br.r.ReadByte()
		if errors.Is(err, io.EOF) {
			if len(br.buf) == 0 {
				return "", io.EOF
			}

			return br.take(), nil
		}

		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}

		if b == '\n' {
			return br.take(), nil
		}

		br.buf = append(br.buf, b)
	}

	// Buffer is full: the line fits only if the terminator comes next.
	ok, err := br.atLineEnd()
	if err != nil {
		return "", err
	}

	if ok {
		return br.take(), nil
	}

	br.buf = br.buf[:0]

	if err := br.discardLine(); err != nil {
		return "", err
	}

	return "", ErrOverflow
}

// take returns the captured bytes with a trailing carriage return removed.
func (br *Reader) take() string {
	line := br.buf
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}

	return string(line)
}

// atLineEnd consumes and reports a pending terminator or end of input.
func (br *Reader) atLineEnd() (bool, error) {
	next, err := br.r.Peek(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}

	if err != nil {
		return false, fmt.Errorf("reading input: %w", err)
	}

	switch next[0] {
	case '\n':
		_, _ = br.r.Discard(1)

		return true, nil
	case '\r':
		pair, err := br.r.Peek(2) //nolint:mnd // "\r\n"
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading input: %w", err)
		}

		if len(pair) == 2 && pair[1] == '\n' {
			_, _ = br.r.Discard(2) //nolint:mnd // "\r\n"

			return true, nil
		}
	}

	return false, nil
}

// discardLine drops everything up to and including the next newline.
func (br *Reader) discardLine() error {
	for {
		_, err := br.r.ReadSlice('\n')

		switch {
		case err == nil, errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		default:
			return fmt.Errorf("discarding overflow: %w", err)
		}
	}
}
