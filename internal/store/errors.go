package store

import "errors"

var (
	// ErrOpen is returned when a document cannot be opened or created.
	ErrOpen = errors.New("opening document")
	// ErrMalformedDocument is returned when a persisted document lacks its header lines.
	ErrMalformedDocument = errors.New("malformed document")
)
