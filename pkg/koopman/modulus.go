package koopman

// Recommended moduli. Each value is the largest prime below the
// variant's register width (one bit narrower for the parity variants,
// which trade that bit for the packed parity), giving the family its
// published Hamming-distance bounds.
const (
	// Modulus8 is the recommended modulus for the 8-bit variants
	// (HD=3 up to 13 bytes).
	Modulus8 uint32 = 253

	// Modulus8Alt is the alternative 8-bit modulus, 239.
	Modulus8Alt uint32 = 239

	// Modulus16 is the modulus for the 16-bit variants
	// (HD=3 up to 4092 bytes). 65519 = 2^16 - 17.
	Modulus16 uint32 = 65519

	// Modulus32 is the modulus for the 32-bit variants
	// (HD=3 up to 134,217,720 bytes). 4294967291 = 2^32 - 5.
	Modulus32 uint64 = 4294967291

	// Modulus15P is the modulus for the 15-bit-plus-parity variant
	// (HD=4 up to 2044 bytes).
	Modulus15P uint32 = 32749

	// Modulus31P is the modulus for the 31-bit-plus-parity variant
	// (HD=4 up to 134,217,720 bytes). 2147483629 = 0x7FFFFFED.
	Modulus31P uint64 = 2147483629
)

// DefaultSeed is the recommended seed constant. It is XORed into the
// first data byte so that messages with leading zeros do not collide
// with shifted or truncated messages. The value must be odd and
// non-zero to preserve the HD=3 guarantee, and producer and verifier
// must agree on it.
const DefaultSeed byte = 0xEF

// fastMod65519 reduces x modulo 65519 = 2^16 - 17 without division:
// x = hi*2^16 + lo, so x ≡ hi*17 + lo. Valid for any uint32 input;
// two folding passes leave at most one conditional subtraction.
func fastMod65519(x uint32) uint32 {
	r := (x>>16)*17 + (x & 0xFFFF)
	r = (r>>16)*17 + (r & 0xFFFF)
	if r >= Modulus16 {
		r -= Modulus16
	}
	return r
}

// fastMod4294967291 reduces x modulo 4294967291 = 2^32 - 5 without
// division: x = hi*2^32 + lo, so x ≡ hi*5 + lo. Valid for x < 2^56,
// which covers every shifted intermediate the byte-wise variants
// produce.
func fastMod4294967291(x uint64) uint64 {
	r := (x>>32)*5 + (x & 0xFFFFFFFF)
	if r >= Modulus32 {
		r -= Modulus32
	}
	return r
}
