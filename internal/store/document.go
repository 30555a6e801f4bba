package store

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout of the date line.
const DateLayout = "2006-01-02"

// headerLines is the number of single-line fields preceding the payload.
const headerLines = 3

// Document is a persisted cipher result with its metadata.
type Document struct {
	// Identity is the first line of the source document.
	Identity string
	// Date is the day the document was written, in DateLayout.
	Date string
	// Key is the key the payload was transformed with.
	Key string
	// Payload holds raw bytes and may contain line breaks.
	Payload []byte
}

// ExtractIdentity returns the text before the first line break, or the whole document if there is none.
// A carriage return preceding the line break is not part of the identity.
func ExtractIdentity(document string) string {
	identity, _, found := strings.Cut(document, "\n")
	if found {
		identity = strings.TrimSuffix(identity, "\r")
	}

	return identity
}

// Parse decodes a persisted document.
func Parse(data []byte) (Document, error) {
	parts := bytes.SplitN(data, []byte("\n"), headerLines+1)
	if len(parts) <= headerLines {
		return Document{}, fmt.Errorf("%w: expected %d header lines, found %d", ErrMalformedDocument, headerLines, len(parts)-1)
	}

	date := string(parts[1])
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Document{}, fmt.Errorf("%w: date line %q: %w", ErrMalformedDocument, date, err)
	}

	return Document{
		Identity: string(parts[0]),
		Date:     date,
		Key:      string(parts[2]),
		Payload:  bytes.TrimSuffix(parts[3], []byte("\n")),
	}, nil
}

// header renders the three single-line fields, each terminated by a newline.
func (d Document) header() string {
	return d.Identity + "\n" + d.Date + "\n" + d.Key + "\n"
}
