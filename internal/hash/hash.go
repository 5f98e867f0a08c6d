// Package hash provides content digests used to tell whether a rewrite of
// the workspace file changed anything.
//
// Digests are xxhash64 values rendered as 16 hex digits. They are for change
// detection only and carry no integrity guarantees.
package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher provides an abstraction for content hashing operations.
type Hasher interface {
	// HashBytes computes the digest of data.
	HashBytes(data []byte) string
}

// XXHasher implements Hasher using xxhash64.
type XXHasher struct{}

// NewXXHasher creates a new XXHasher.
func NewXXHasher() *XXHasher {
	return &XXHasher{}
}

// HashBytes computes the xxhash64 digest of data.
func (h *XXHasher) HashBytes(data []byte) string {
	return format(xxhash.Sum64(data))
}

func format(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
