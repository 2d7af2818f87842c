package koopman

import (
	"fmt"
	"math/bits"
)

// Sum8 computes the 8-bit byte-wise Koopman checksum of data.
//
// The modulus must be Modulus8 or Modulus8Alt. Because the reduced sum
// always fits in the low byte, each step merges the next byte with a
// bitwise OR; the low eight bits of the shifted residue are guaranteed
// clear, so OR and addition coincide here and OR is the cheaper form.
func Sum8(data []byte, seed byte, modulus uint32) (uint8, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	if modulus != Modulus8 && modulus != Modulus8Alt {
		return 0, fmt.Errorf("%w: got %d, want %d or %d", ErrBadModulus, modulus, Modulus8, Modulus8Alt)
	}

	sum := uint32(data[0] ^ seed)
	for _, b := range data[1:] {
		sum = (sum<<8 | uint32(b)) % modulus
	}

	// Append the implicit zero byte.
	sum = (sum << 8) % modulus
	return uint8(sum), nil
}

// Sum16 computes the 16-bit byte-wise Koopman checksum of data.
// The modulus must be Modulus16.
//
// The per-step width is one byte, so finalization appends two implicit
// zero bytes to cover the full checksum width.
func Sum16(data []byte, seed byte, modulus uint32) (uint16, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	if modulus != Modulus16 {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrBadModulus, modulus, Modulus16)
	}

	sum := uint32(data[0] ^ seed)
	for _, b := range data[1:] {
		sum = fastMod65519(sum<<8 + uint32(b))
	}

	// Append two implicit zero bytes.
	sum = fastMod65519(sum << 8)
	sum = fastMod65519(sum << 8)
	return uint16(sum), nil
}

// Sum32 computes the 32-bit byte-wise Koopman checksum of data, which
// must be at least two bytes long. The modulus must be Modulus32.
//
// The modulus is within five of 2^32, so intermediate sums need more
// than 32 bits; the accumulator is a uint64 of which up to 40 bits are
// live before each reduction.
func Sum32(data []byte, seed byte, modulus uint64) (uint32, error) {
	if len(data) < 2 {
		return 0, fmt.Errorf("%w: got %d bytes, need at least 2", ErrShortData, len(data))
	}
	if modulus != Modulus32 {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrBadModulus, modulus, Modulus32)
	}

	sum := uint64(data[0] ^ seed)
	for _, b := range data[1:] {
		sum = fastMod4294967291(sum<<8 + uint64(b))
	}

	// Append four implicit zero bytes.
	for i := 0; i < 4; i++ {
		sum = fastMod4294967291(sum << 8)
	}
	return uint32(sum), nil
}

// Sum16Parity computes the 15-bit Koopman checksum of data with a
// parity bit packed into the least significant bit of the result.
// The modulus must be Modulus15P.
//
// The parity bit is the XOR reduction of every processed byte,
// including the seed-mixed first byte. It costs one bit of checksum
// range (hence the narrower modulus) and buys detection of error
// patterns the modular sum alone misses, raising the family's
// guarantee from HD=3 to HD=4.
func Sum16Parity(data []byte, seed byte, modulus uint32) (uint16, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	if modulus != Modulus15P {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrBadModulus, modulus, Modulus15P)
	}

	sum := uint32(data[0] ^ seed)
	psum := data[0] ^ seed
	for _, b := range data[1:] {
		sum = (sum<<8 + uint32(b)) % modulus
		psum ^= b
	}

	// Append two implicit zero bytes.
	sum = (sum << 8) % modulus
	sum = (sum << 8) % modulus

	return uint16(sum)<<1 | uint16(parity(psum)), nil
}

// Sum32Parity computes the 31-bit Koopman checksum of data with a
// parity bit packed into the least significant bit of the result.
// The data must be at least two bytes long and the modulus must be
// Modulus31P. See Sum16Parity for the parity semantics.
func Sum32Parity(data []byte, seed byte, modulus uint64) (uint32, error) {
	if len(data) < 2 {
		return 0, fmt.Errorf("%w: got %d bytes, need at least 2", ErrShortData, len(data))
	}
	if modulus != Modulus31P {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrBadModulus, modulus, Modulus31P)
	}

	sum := uint64(data[0] ^ seed)
	psum := data[0] ^ seed
	for _, b := range data[1:] {
		sum = (sum<<8 + uint64(b)) % modulus
		psum ^= b
	}

	// Append four implicit zero bytes.
	for i := 0; i < 4; i++ {
		sum = (sum << 8) % modulus
	}

	return uint32(sum)<<1 | uint32(parity(psum)), nil
}

// parity XOR-reduces the bits of b to a single bit.
func parity(b byte) byte {
	return byte(bits.OnesCount8(b) & 1)
}
