package checksum

import (
	"hash/crc32"
)

type crc32IEEE struct {
	name  string
	table *crc32.Table
}

// NewCRC32IEEE returns the CRC32 checksum with the IEEE polynomial,
// provided as a conventional baseline alongside the Koopman family.
func NewCRC32IEEE() *crc32IEEE {
	return &crc32IEEE{
		name:  string(CRC32IEEE),
		table: crc32.MakeTable(crc32.IEEE),
	}
}

func (c *crc32IEEE) Calculate(data []byte) (uint64, error) {
	return uint64(crc32.Checksum(data, c.table)), nil
}

func (c *crc32IEEE) Verify(data []byte, expected uint64) bool {
	return uint64(crc32.Checksum(data, c.table)) == expected
}

func (c *crc32IEEE) Size() uint8 {
	return crc32.Size
}

func (c *crc32IEEE) Name() string {
	return c.name
}
