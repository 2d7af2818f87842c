package checksum

import (
	"github.com/cespare/xxhash/v2"
)

type xxHash struct {
	name string
}

// NewXXHash returns the 64-bit xxHash checksum, a fast non-cryptographic
// hash for callers who want speed over guaranteed Hamming distance.
func NewXXHash() *xxHash {
	return &xxHash{name: string(XXHash)}
}

func (c *xxHash) Calculate(data []byte) (uint64, error) {
	return xxhash.Sum64(data), nil
}

func (c *xxHash) Verify(data []byte, expected uint64) bool {
	return xxhash.Sum64(data) == expected
}

func (c *xxHash) Size() uint8 {
	return 8
}

func (c *xxHash) Name() string {
	return c.name
}
