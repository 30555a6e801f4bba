// Package cipher provides a repeating-key XOR transform.
// The transform is its own inverse: the same call encrypts and decrypts.
// It offers no cryptographic strength.
package cipher
