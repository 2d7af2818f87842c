package compression

import (
	"fmt"
	"runtime"

	"github.com/iamNilotpal/koopman/internal/core/domain"
	validation "github.com/iamNilotpal/koopman/pkg/errors"
)

// Compression level constants define the trade-off between compression
// ratio and speed. Higher levels provide better compression at the cost
// of increased CPU usage.
const (
	FastestLevel uint8 = 1 // Optimized for speed with minimal compression
	DefaultLevel uint8 = 3 // Balanced between speed and compression ratio
	BestLevel    uint8 = 4 // Maximum compression ratio, higher CPU usage
)

// Returns CompressionOptions initialized with recommended defaults that
// balance compression ratio and performance for most payloads.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Enable:             true,
		Level:              DefaultLevel,
		EncoderConcurrency: uint8(runtime.NumCPU()),
		DecoderConcurrency: uint8(runtime.NumCPU()),
	}
}

// Checks if the compression options are valid and returns an error if
// any option is outside acceptable bounds.
func Validate(input *domain.CompressionOptions) error {
	if input.Level < FastestLevel || input.Level > BestLevel {
		return validation.NewValidationError(
			"level", input.Level,
			fmt.Errorf("compression level must be between %d and %d", FastestLevel, BestLevel),
		)
	}

	if input.EncoderConcurrency > uint8(runtime.NumCPU()) {
		return validation.NewValidationError(
			"encoderConcurrency", input.EncoderConcurrency,
			fmt.Errorf("encoder concurrency must be between 0 and %d", runtime.NumCPU()),
		)
	}

	if input.DecoderConcurrency > uint8(runtime.NumCPU()) {
		return validation.NewValidationError(
			"decoderConcurrency", input.DecoderConcurrency,
			fmt.Errorf("decoder concurrency must be between 0 and %d", runtime.NumCPU()),
		)
	}

	return nil
}
