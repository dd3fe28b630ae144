// Package hasher provides the digest primitives used to name content.
package hasher

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
)

// ErrPrimitiveFailure is returned when the digest primitive reports a fault.
var ErrPrimitiveFailure = errors.New("digest primitive failure")

// Hasher is the interface that name hashers must implement.
// It provides low-level operations for hash calculating.
type Hasher interface {
	Name() string
	Hash(data []byte) ([]byte, error)
}

type sha256Hasher struct{}

// NewSHA256Hasher creates a new sha256Hasher instance.
// It keeps no state between calls and is safe for concurrent use.
func NewSHA256Hasher() Hasher {
	return sha256Hasher{}
}

// Name implements Hasher interface.
func (h sha256Hasher) Name() string {
	return "sha-256"
}

// Hash implements Hasher interface.
func (h sha256Hasher) Hash(data []byte) ([]byte, error) {
	return Sum(sha256.New(), data)
}

// Sum writes data into a fresh hash and returns the digest.
func Sum(h hash.Hash, data []byte) ([]byte, error) {
	n, err := h.Write(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to write data: %w", ErrPrimitiveFailure, err)
	}

	if n < len(data) {
		return nil, fmt.Errorf("%w: short write %d of %d", ErrPrimitiveFailure, n, len(data))
	}

	return h.Sum(nil), nil
}
