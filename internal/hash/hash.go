// Package hash provides content digests for rendered composites.
//
// Layergen records a SHA-256 digest of every composite it writes so a rerun
// over the same assets can be checked for byte-identical output.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hasher computes digests of encoded composites.
type Hasher interface {
	HashBytes(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// HashBytes returns the hex SHA-256 of data.
func (h *SHA256Hasher) HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FakeHasher returns "fakehash-<len>" digests and counts its calls.
type FakeHasher struct {
	Calls int
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{}
}

// HashBytes returns a digest derived from the buffer length.
func (h *FakeHasher) HashBytes(data []byte) string {
	h.Calls++
	return fmt.Sprintf("fakehash-%d", len(data))
}
