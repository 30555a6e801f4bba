package store

// ReadOutcome reports what FallbackOnReadFailure returned.
type ReadOutcome struct {
	// Text is the file content, or the fallback text when FellBack is set.
	Text string
	// FellBack is set when the fallback text replaced the file content.
	FellBack bool
	// Err is the read failure that triggered the fallback.
	Err error
}

// WriteOutcome reports what BestEffortWrite did.
type WriteOutcome struct {
	// Path is the destination of the write.
	Path string
	// Size is the number of bytes written.
	Size int64
	// Err is set when nothing was written.
	Err error
}

// OK reports whether the document was written.
func (o WriteOutcome) OK() bool {
	return o.Err == nil
}

// FallbackOnReadFailure reads path and substitutes the fallback text if that fails.
// The failure is logged with the path and the underlying error.
func (s *Store) FallbackOnReadFailure(path string) ReadOutcome {
	text, err := s.Read(path)
	if err != nil {
		s.logger.Error("error opening source document, using fallback text", "path", path, "error", err)

		return ReadOutcome{Text: s.fallback, FellBack: true, Err: err}
	}

	return ReadOutcome{Text: text}
}

// BestEffortWrite stamps and writes a document to path.
// A failure is logged with the path and the underlying error and reported in the outcome; it is not retried.
func (s *Store) BestEffortWrite(path, identity, key string, payload []byte) WriteOutcome {
	size, err := s.Write(path, s.Stamp(identity, key, payload))
	if err != nil {
		s.logger.Error("error writing document, skipping", "path", path, "error", err)

		return WriteOutcome{Path: path, Err: err}
	}

	s.logger.Debug("document written", "path", path, "size", size)

	return WriteOutcome{Path: path, Size: size}
}
