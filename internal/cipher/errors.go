package cipher

import "errors"

// ErrInvalidArgument is returned when the source or the key is empty.
var ErrInvalidArgument = errors.New("invalid argument")
