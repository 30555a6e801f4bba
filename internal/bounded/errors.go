package bounded

import "errors"

var (
	// ErrOverflow is returned when a line does not fit in the buffer capacity.
	ErrOverflow = errors.New("input exceeds buffer capacity")
	// ErrAttemptsExhausted is returned when every allowed attempt overflowed.
	ErrAttemptsExhausted = errors.New("too many attempts")
	// ErrNoInput is returned when the input ends before a line was captured.
	ErrNoInput = errors.New("no input")
)
