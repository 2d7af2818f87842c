package koopman

import "fmt"

// Sum8Block3 computes the 8-bit Koopman checksum of data consuming
// three bytes per step. The result differs from Sum8 on the same input;
// the two are distinct checksums, not interchangeable encodings.
//
// The first byte is folded in through the seed step; subsequent bytes
// are packed big-endian into 24-bit blocks. The final one to three
// bytes are always consumed by a byte-wise tail pass, so any length of
// at least one byte is accepted. The modulus must be Modulus8 or
// Modulus8Alt.
func Sum8Block3(data []byte, seed byte, modulus uint32) (uint8, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	if modulus != Modulus8 && modulus != Modulus8Alt {
		return 0, fmt.Errorf("%w: got %d, want %d or %d", ErrBadModulus, modulus, Modulus8, Modulus8Alt)
	}

	sum := uint32(data[0] ^ seed)

	i := 1
	for i < len(data)-3 {
		block := uint32(data[i])<<16 | uint32(data[i+1])<<8 | uint32(data[i+2])
		sum = (sum<<24 | block) % modulus
		i += 3
	}

	// Tail pass: remaining bytes one at a time.
	for ; i < len(data); i++ {
		sum = (sum<<8 | uint32(data[i])) % modulus
	}

	// Append the implicit zero byte.
	sum = (sum << 8) % modulus
	return uint8(sum), nil
}

// Sum16Block2 computes the 16-bit Koopman checksum of data consuming
// two bytes per step. The data length must be even and at least two;
// the modulus must be Modulus16.
//
// The first two bytes form the seed block, with the seed XORed into
// the high byte. Unlike the 8-bit variants the blocks are merged by
// addition: the modulus is close enough to 2^16 that the shifted
// residue and the incoming block can overlap, and OR would lose
// carries.
func Sum16Block2(data []byte, seed byte, modulus uint32) (uint16, error) {
	if len(data) < 2 {
		return 0, fmt.Errorf("%w: got %d bytes, need at least 2", ErrShortData, len(data))
	}
	if len(data)%2 != 0 {
		return 0, fmt.Errorf("%w: got %d bytes, need an even count", ErrUnalignedData, len(data))
	}
	if modulus != Modulus16 {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrBadModulus, modulus, Modulus16)
	}

	sum := uint32(data[1]) | uint32(seed^data[0])<<8

	for i := 2; i < len(data); i += 2 {
		block := uint32(data[i])<<8 | uint32(data[i+1])
		sum = fastMod65519(sum<<16 + block)
	}

	// Append one implicit zero block.
	sum = fastMod65519(sum << 16)
	return uint16(sum), nil
}

// Sum32Block4 computes the 32-bit Koopman checksum of data consuming
// four bytes per step. The data length must be a multiple of four and
// at least four; the modulus must be Modulus32.
//
// The first four bytes form the seed block with the seed XORed into
// the high byte. Each step shifts the residue a full 32 bits, so the
// uint64 accumulator is exactly wide enough for the shifted residue
// plus one incoming block.
func Sum32Block4(data []byte, seed byte, modulus uint64) (uint32, error) {
	if len(data) < 4 {
		return 0, fmt.Errorf("%w: got %d bytes, need at least 4", ErrShortData, len(data))
	}
	if len(data)%4 != 0 {
		return 0, fmt.Errorf("%w: got %d bytes, need a multiple of 4", ErrUnalignedData, len(data))
	}
	if modulus != Modulus32 {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrBadModulus, modulus, Modulus32)
	}

	sum := uint64(seed)<<24 ^ uint64(pack32(data))

	for i := 4; i < len(data); i += 4 {
		sum = (sum<<32 + uint64(pack32(data[i:]))) % modulus
	}

	// Append one implicit zero block.
	sum = (sum << 32) % modulus
	return uint32(sum), nil
}

func pack32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
