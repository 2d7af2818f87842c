package frame

import (
	"errors"

	"github.com/iamNilotpal/koopman/internal/adapters/checksum"
	"github.com/iamNilotpal/koopman/internal/core/domain"
)

// Frame layout, all integers big-endian:
//
//	[0:2]  magic
//	[2]    version
//	[3]    algorithm code
//	[4]    flags
//	[5]    reserved, zero
//	[6:10] body length
//	[10:]  body, then checksum trailer (width = algorithm's Size)
//
// The checksum trailer covers the header and the body exactly as they
// appear on the wire, so corruption anywhere in the frame except the
// trailer's own width is subject to the algorithm's detection
// guarantees.
const (
	frameMagic   uint16 = 0x4B43 // "KC"
	frameVersion byte   = 1
	headerSize          = 10

	flagCompressed byte = 1 << 0
)

// Options configures a Codec.
type Options struct {
	// Checksum selects the trailer algorithm and its seed.
	// The byte-wise Koopman variants are recommended for frames; the
	// block variants impose their alignment contract on the whole
	// header+body region.
	Checksum *domain.ChecksumOptions

	// Compression configures optional zstd compression of the payload.
	Compression *domain.CompressionOptions
}

// Structural decode failures and detected corruption.
var (
	ErrEmptyPayload      = errors.New("frame: empty payload")
	ErrFrameTooShort     = errors.New("frame: shorter than header and trailer")
	ErrBadMagic          = errors.New("frame: bad magic")
	ErrUnknownVersion    = errors.New("frame: unknown version")
	ErrAlgorithmMismatch = errors.New("frame: algorithm does not match codec configuration")
	ErrLengthMismatch    = errors.New("frame: length field does not match frame size")
	ErrChecksumMismatch  = errors.New("frame: checksum mismatch")
	ErrCompressedFrame   = errors.New("frame: compressed frame but compression is disabled")
)

// Wire codes for the supported algorithms. Zero is reserved for
// custom implementations supplied by the caller.
var algorithmCodes = map[domain.ChecksumAlgorithm]byte{
	checksum.Koopman8:        1,
	checksum.Koopman8Block3:  2,
	checksum.Koopman16:       3,
	checksum.Koopman16Block2: 4,
	checksum.Koopman16Parity: 5,
	checksum.Koopman32:       6,
	checksum.Koopman32Block4: 7,
	checksum.Koopman32Parity: 8,
	checksum.CRC32IEEE:       9,
	checksum.XXHash:          10,
}
