package checksum

import (
	"github.com/iamNilotpal/koopman/pkg/koopman"
)

type koopman16 struct {
	name string
	seed byte
}

// NewKoopman16 returns the 16-bit byte-wise Koopman checksum with the
// given seed and the recommended modulus 65519.
func NewKoopman16(seed byte) *koopman16 {
	return &koopman16{name: string(Koopman16), seed: seed}
}

func (c *koopman16) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Sum16(data, c.seed, koopman.Modulus16)
	return uint64(sum), err
}

func (c *koopman16) Verify(data []byte, expected uint64) bool {
	sum, err := koopman.Sum16(data, c.seed, koopman.Modulus16)
	return err == nil && uint64(sum) == expected
}

func (c *koopman16) Size() uint8 {
	return 2
}

func (c *koopman16) Name() string {
	return c.name
}

type koopman16Block2 struct {
	name string
	seed byte
}

// NewKoopman16Block2 returns the 16-bit Koopman checksum computed over
// 2-byte blocks. Payloads must have an even length of at least two.
func NewKoopman16Block2(seed byte) *koopman16Block2 {
	return &koopman16Block2{name: string(Koopman16Block2), seed: seed}
}

func (c *koopman16Block2) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Sum16Block2(data, c.seed, koopman.Modulus16)
	return uint64(sum), err
}

func (c *koopman16Block2) Verify(data []byte, expected uint64) bool {
	sum, err := koopman.Sum16Block2(data, c.seed, koopman.Modulus16)
	return err == nil && uint64(sum) == expected
}

func (c *koopman16Block2) Size() uint8 {
	return 2
}

func (c *koopman16Block2) Name() string {
	return c.name
}

type koopman16Parity struct {
	name string
	seed byte
}

// NewKoopman16Parity returns the 15-bit Koopman checksum with a packed
// parity bit, using the given seed and modulus 32749.
func NewKoopman16Parity(seed byte) *koopman16Parity {
	return &koopman16Parity{name: string(Koopman16Parity), seed: seed}
}

func (c *koopman16Parity) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Sum16Parity(data, c.seed, koopman.Modulus15P)
	return uint64(sum), err
}

func (c *koopman16Parity) Verify(data []byte, expected uint64) bool {
	sum, err := koopman.Sum16Parity(data, c.seed, koopman.Modulus15P)
	return err == nil && uint64(sum) == expected
}

func (c *koopman16Parity) Size() uint8 {
	return 2
}

func (c *koopman16Parity) Name() string {
	return c.name
}
