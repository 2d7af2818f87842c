package checksum

import (
	"github.com/iamNilotpal/koopman/pkg/koopman"
)

type koopman32 struct {
	name string
	seed byte
}

// NewKoopman32 returns the 32-bit byte-wise Koopman checksum with the
// given seed and the recommended modulus 4294967291. Payloads must be
// at least two bytes.
func NewKoopman32(seed byte) *koopman32 {
	return &koopman32{name: string(Koopman32), seed: seed}
}

func (c *koopman32) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Sum32(data, c.seed, koopman.Modulus32)
	return uint64(sum), err
}

func (c *koopman32) Verify(data []byte, expected uint64) bool {
	sum, err := koopman.Sum32(data, c.seed, koopman.Modulus32)
	return err == nil && uint64(sum) == expected
}

func (c *koopman32) Size() uint8 {
	return 4
}

func (c *koopman32) Name() string {
	return c.name
}

type koopman32Block4 struct {
	name string
	seed byte
}

// NewKoopman32Block4 returns the 32-bit Koopman checksum computed over
// 4-byte blocks. Payloads must have a length divisible by four, with
// at least one block.
func NewKoopman32Block4(seed byte) *koopman32Block4 {
	return &koopman32Block4{name: string(Koopman32Block4), seed: seed}
}

func (c *koopman32Block4) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Sum32Block4(data, c.seed, koopman.Modulus32)
	return uint64(sum), err
}

func (c *koopman32Block4) Verify(data []byte, expected uint64) bool {
	sum, err := koopman.Sum32Block4(data, c.seed, koopman.Modulus32)
	return err == nil && uint64(sum) == expected
}

func (c *koopman32Block4) Size() uint8 {
	return 4
}

func (c *koopman32Block4) Name() string {
	return c.name
}

type koopman32Parity struct {
	name string
	seed byte
}

// NewKoopman32Parity returns the 31-bit Koopman checksum with a packed
// parity bit, using the given seed and modulus 2147483629. Payloads
// must be at least two bytes.
func NewKoopman32Parity(seed byte) *koopman32Parity {
	return &koopman32Parity{name: string(Koopman32Parity), seed: seed}
}

func (c *koopman32Parity) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Sum32Parity(data, c.seed, koopman.Modulus31P)
	return uint64(sum), err
}

func (c *koopman32Parity) Verify(data []byte, expected uint64) bool {
	sum, err := koopman.Sum32Parity(data, c.seed, koopman.Modulus31P)
	return err == nil && uint64(sum) == expected
}

func (c *koopman32Parity) Size() uint8 {
	return 4
}

func (c *koopman32Parity) Name() string {
	return c.name
}
