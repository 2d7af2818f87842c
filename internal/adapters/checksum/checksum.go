// Package checksum provides the checksum adapters available to the
// frame codec: the Koopman family plus the conventional fast hashes
// commonly used for the same purpose.
package checksum

import (
	"fmt"

	"github.com/iamNilotpal/koopman/internal/core/domain"
	"github.com/iamNilotpal/koopman/internal/core/ports"
	validation "github.com/iamNilotpal/koopman/pkg/errors"
	"github.com/iamNilotpal/koopman/pkg/koopman"
)

const (
	// Koopman8 is the 8-bit byte-wise Koopman checksum (HD=3 up to 13 bytes).
	Koopman8 domain.ChecksumAlgorithm = "koopman8"

	// Koopman8Block3 is the 8-bit Koopman checksum over 3-byte blocks.
	Koopman8Block3 domain.ChecksumAlgorithm = "koopman8-block3"

	// Koopman16 is the 16-bit byte-wise Koopman checksum (HD=3 up to 4092 bytes).
	Koopman16 domain.ChecksumAlgorithm = "koopman16"

	// Koopman16Block2 is the 16-bit Koopman checksum over 2-byte blocks.
	// Requires an even payload length.
	Koopman16Block2 domain.ChecksumAlgorithm = "koopman16-block2"

	// Koopman16Parity is the 15-bit Koopman checksum with a packed
	// parity bit (HD=4 up to 2044 bytes).
	Koopman16Parity domain.ChecksumAlgorithm = "koopman16-parity"

	// Koopman32 is the 32-bit byte-wise Koopman checksum (HD=3 up to
	// 134,217,720 bytes).
	Koopman32 domain.ChecksumAlgorithm = "koopman32"

	// Koopman32Block4 is the 32-bit Koopman checksum over 4-byte blocks.
	// Requires a payload length divisible by four.
	Koopman32Block4 domain.ChecksumAlgorithm = "koopman32-block4"

	// Koopman32Parity is the 31-bit Koopman checksum with a packed
	// parity bit (HD=4 up to 134,217,720 bytes).
	Koopman32Parity domain.ChecksumAlgorithm = "koopman32-parity"

	// CRC32IEEE uses the IEEE polynomial for CRC32 checksums.
	CRC32IEEE domain.ChecksumAlgorithm = "crc32-ieee"

	// XXHash uses the 64-bit xxHash algorithm.
	XXHash domain.ChecksumAlgorithm = "xxhash"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Algorithm: Koopman32,
		Seed:      koopman.DefaultSeed,
	}
}

// Validate checks that the options name a supported algorithm.
func Validate(input *domain.ChecksumOptions) error {
	if input.Custom == nil {
		switch input.Algorithm {
		case Koopman8, Koopman8Block3, Koopman16, Koopman16Block2, Koopman16Parity,
			Koopman32, Koopman32Block4, Koopman32Parity, CRC32IEEE, XXHash:
		default:
			return validation.NewValidationError(
				"algorithm", input.Algorithm, fmt.Errorf("unsupported checksum algorithm"),
			)
		}
	}
	return nil
}

// New constructs the checksum implementation selected by opts.
// A Custom implementation, when set, takes precedence.
func New(opts *domain.ChecksumOptions) (ports.Checksum, error) {
	if opts.Custom != nil {
		return opts.Custom, nil
	}

	switch opts.Algorithm {
	case Koopman8:
		return NewKoopman8(opts.Seed), nil
	case Koopman8Block3:
		return NewKoopman8Block3(opts.Seed), nil
	case Koopman16:
		return NewKoopman16(opts.Seed), nil
	case Koopman16Block2:
		return NewKoopman16Block2(opts.Seed), nil
	case Koopman16Parity:
		return NewKoopman16Parity(opts.Seed), nil
	case Koopman32:
		return NewKoopman32(opts.Seed), nil
	case Koopman32Block4:
		return NewKoopman32Block4(opts.Seed), nil
	case Koopman32Parity:
		return NewKoopman32Parity(opts.Seed), nil
	case CRC32IEEE:
		return NewCRC32IEEE(), nil
	case XXHash:
		return NewXXHash(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", opts.Algorithm)
	}
}
