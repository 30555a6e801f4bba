package cipher

import "fmt"

// Transform combines every byte of source with the key byte at the same index modulo the key length.
// The result is a fresh slice of exactly len(source) bytes; source is left untouched.
func Transform(source, key []byte) ([]byte, error) {
	if err := check(source, key); err != nil {
		return nil, err
	}

	output := make([]byte, len(source))

	xorInto(output, source, key, 0)

	return output, nil
}

func check(source, key []byte) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}

	if len(source) == 0 {
		return fmt.Errorf("%w: empty source", ErrInvalidArgument)
	}

	return nil
}

// xorInto writes src^key into dst, starting at key position offset, and returns the next offset.
func xorInto(dst, src, key []byte, offset int) int {
	for i := range src {
		dst[i] = src[i] ^ key[offset]

		offset++
		if offset == len(key) {
			offset = 0
		}
	}

	return offset
}
