package checksum

import (
	"github.com/iamNilotpal/koopman/pkg/koopman"
)

type koopman8 struct {
	name string
	seed byte
}

// NewKoopman8 returns the 8-bit byte-wise Koopman checksum with the
// given seed and the recommended modulus 253.
func NewKoopman8(seed byte) *koopman8 {
	return &koopman8{name: string(Koopman8), seed: seed}
}

func (c *koopman8) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Sum8(data, c.seed, koopman.Modulus8)
	return uint64(sum), err
}

func (c *koopman8) Verify(data []byte, expected uint64) bool {
	sum, err := koopman.Sum8(data, c.seed, koopman.Modulus8)
	return err == nil && uint64(sum) == expected
}

func (c *koopman8) Size() uint8 {
	return 1
}

func (c *koopman8) Name() string {
	return c.name
}

type koopman8Block3 struct {
	name string
	seed byte
}

// NewKoopman8Block3 returns the 8-bit Koopman checksum computed over
// 3-byte blocks with the given seed and the recommended modulus 253.
func NewKoopman8Block3(seed byte) *koopman8Block3 {
	return &koopman8Block3{name: string(Koopman8Block3), seed: seed}
}

func (c *koopman8Block3) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Sum8Block3(data, c.seed, koopman.Modulus8)
	return uint64(sum), err
}

func (c *koopman8Block3) Verify(data []byte, expected uint64) bool {
	sum, err := koopman.Sum8Block3(data, c.seed, koopman.Modulus8)
	return err == nil && uint64(sum) == expected
}

func (c *koopman8Block3) Size() uint8 {
	return 1
}

func (c *koopman8Block3) Name() string {
	return c.name
}
