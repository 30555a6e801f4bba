package logic

import "errors"

// ErrVerifyMismatch is returned when a persisted document does not reproduce its source.
var ErrVerifyMismatch = errors.New("verification failed")
