package koopman

// Streaming digests for the byte-wise variants, for data that arrives
// in chunks. Chunk boundaries never affect the result: feeding a
// message byte by byte, in slices, or in one Write produces the same
// checksum as the corresponding one-shot function.
//
// Each digest follows the hash package conventions (Write never
// returns an error; Sum appends the big-endian checksum and does not
// consume the digest). A digest that has received no data finalizes
// to zero. The block variants are deliberately one-shot only: their
// alignment preconditions make an incremental Write contract awkward,
// and a caller who can buffer aligned blocks can call the one-shot
// form directly.

// Digest8 is the incremental form of Sum8 with the default modulus.
type Digest8 struct {
	sum     uint32
	seed    byte
	started bool
}

// New8 returns a Digest8 seeded with seed.
func New8(seed byte) *Digest8 { return &Digest8{seed: seed} }

func (d *Digest8) Write(p []byte) (int, error) {
	i := 0
	if !d.started && len(p) > 0 {
		d.sum = uint32(p[0] ^ d.seed)
		d.started = true
		i = 1
	}
	for ; i < len(p); i++ {
		d.sum = (d.sum<<8 | uint32(p[i])) % Modulus8
	}
	return len(p), nil
}

// Sum8 folds in the implicit trailing zero and returns the checksum.
// The digest itself is not modified and may keep accepting writes.
func (d *Digest8) Sum8() uint8 {
	if !d.started {
		return 0
	}
	return uint8((d.sum << 8) % Modulus8)
}

func (d *Digest8) Sum(in []byte) []byte { return append(in, d.Sum8()) }
func (d *Digest8) Reset()               { d.sum, d.started = 0, false }
func (d *Digest8) Size() int            { return 1 }
func (d *Digest8) BlockSize() int       { return 1 }

// Digest16 is the incremental form of Sum16 with the default modulus.
type Digest16 struct {
	sum     uint32
	seed    byte
	started bool
}

// New16 returns a Digest16 seeded with seed.
func New16(seed byte) *Digest16 { return &Digest16{seed: seed} }

func (d *Digest16) Write(p []byte) (int, error) {
	i := 0
	if !d.started && len(p) > 0 {
		d.sum = uint32(p[0] ^ d.seed)
		d.started = true
		i = 1
	}
	for ; i < len(p); i++ {
		d.sum = fastMod65519(d.sum<<8 + uint32(p[i]))
	}
	return len(p), nil
}

// Sum16 folds in the implicit trailing zeros and returns the checksum.
// The digest itself is not modified and may keep accepting writes.
func (d *Digest16) Sum16() uint16 {
	if !d.started {
		return 0
	}
	s := fastMod65519(d.sum << 8)
	s = fastMod65519(s << 8)
	return uint16(s)
}

func (d *Digest16) Sum(in []byte) []byte {
	s := d.Sum16()
	return append(in, byte(s>>8), byte(s))
}

func (d *Digest16) Reset()         { d.sum, d.started = 0, false }
func (d *Digest16) Size() int      { return 2 }
func (d *Digest16) BlockSize() int { return 1 }

// Digest32 is the incremental form of Sum32 with the default modulus.
// It implements hash.Hash32.
type Digest32 struct {
	sum     uint64
	seed    byte
	started bool
}

// New32 returns a Digest32 seeded with seed.
func New32(seed byte) *Digest32 { return &Digest32{seed: seed} }

func (d *Digest32) Write(p []byte) (int, error) {
	i := 0
	if !d.started && len(p) > 0 {
		d.sum = uint64(p[0] ^ d.seed)
		d.started = true
		i = 1
	}
	for ; i < len(p); i++ {
		d.sum = fastMod4294967291(d.sum<<8 + uint64(p[i]))
	}
	return len(p), nil
}

// Sum32 folds in the implicit trailing zeros and returns the checksum.
// The digest itself is not modified and may keep accepting writes.
func (d *Digest32) Sum32() uint32 {
	if !d.started {
		return 0
	}
	s := d.sum
	for i := 0; i < 4; i++ {
		s = fastMod4294967291(s << 8)
	}
	return uint32(s)
}

func (d *Digest32) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *Digest32) Reset()         { d.sum, d.started = 0, false }
func (d *Digest32) Size() int      { return 4 }
func (d *Digest32) BlockSize() int { return 1 }

// Digest16P is the incremental form of Sum16Parity with the default
// modulus.
type Digest16P struct {
	sum     uint32
	psum    byte
	seed    byte
	started bool
}

// New16P returns a Digest16P seeded with seed.
func New16P(seed byte) *Digest16P { return &Digest16P{seed: seed} }

func (d *Digest16P) Write(p []byte) (int, error) {
	i := 0
	if !d.started && len(p) > 0 {
		first := p[0] ^ d.seed
		d.sum = uint32(first)
		d.psum = first
		d.started = true
		i = 1
	}
	for ; i < len(p); i++ {
		d.sum = (d.sum<<8 + uint32(p[i])) % Modulus15P
		d.psum ^= p[i]
	}
	return len(p), nil
}

// Sum16 folds in the implicit trailing zeros, packs the parity bit
// into the low bit, and returns the checksum. The digest itself is not
// modified and may keep accepting writes.
func (d *Digest16P) Sum16() uint16 {
	if !d.started {
		return 0
	}
	s := (d.sum << 8) % Modulus15P
	s = (s << 8) % Modulus15P
	return uint16(s)<<1 | uint16(parity(d.psum))
}

func (d *Digest16P) Sum(in []byte) []byte {
	s := d.Sum16()
	return append(in, byte(s>>8), byte(s))
}

func (d *Digest16P) Reset()         { d.sum, d.psum, d.started = 0, 0, false }
func (d *Digest16P) Size() int      { return 2 }
func (d *Digest16P) BlockSize() int { return 1 }

// Digest32P is the incremental form of Sum32Parity with the default
// modulus.
type Digest32P struct {
	sum     uint64
	psum    byte
	seed    byte
	started bool
}

// New32P returns a Digest32P seeded with seed.
func New32P(seed byte) *Digest32P { return &Digest32P{seed: seed} }

func (d *Digest32P) Write(p []byte) (int, error) {
	i := 0
	if !d.started && len(p) > 0 {
		first := p[0] ^ d.seed
		d.sum = uint64(first)
		d.psum = first
		d.started = true
		i = 1
	}
	for ; i < len(p); i++ {
		d.sum = (d.sum<<8 + uint64(p[i])) % Modulus31P
		d.psum ^= p[i]
	}
	return len(p), nil
}

// Sum32 folds in the implicit trailing zeros, packs the parity bit
// into the low bit, and returns the checksum. The digest itself is not
// modified and may keep accepting writes.
func (d *Digest32P) Sum32() uint32 {
	if !d.started {
		return 0
	}
	s := d.sum
	for i := 0; i < 4; i++ {
		s = (s << 8) % Modulus31P
	}
	return uint32(s)<<1 | uint32(parity(d.psum))
}

func (d *Digest32P) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *Digest32P) Reset()         { d.sum, d.psum, d.started = 0, 0, false }
func (d *Digest32P) Size() int      { return 4 }
func (d *Digest32P) BlockSize() int { return 1 }
