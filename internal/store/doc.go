// Package store loads source documents and persists cipher output as four-field documents.
//
// A persisted document is plain text up to its payload:
//
//	line 1: identity
//	line 2: date (YYYY-MM-DD)
//	line 3: key
//	line 4+: payload, raw bytes, followed by one newline
//
// Failures are handled by two named strategies. FallbackOnReadFailure substitutes
// a built-in document when the source cannot be read. BestEffortWrite logs a failed
// write and reports it in its outcome without stopping the caller.
package store
