package frame

import (
	"fmt"

	"github.com/iamNilotpal/koopman/internal/adapters/checksum"
	"github.com/iamNilotpal/koopman/internal/adapters/compression"
)

func Validate(opts *Options) error {
	if opts.Checksum != nil {
		if err := checksum.Validate(opts.Checksum); err != nil {
			return fmt.Errorf("invalid checksum options: %w", err)
		}
	}

	if opts.Compression != nil && opts.Compression.Enable {
		if err := compression.Validate(opts.Compression); err != nil {
			return fmt.Errorf("invalid compression options: %w", err)
		}
	}

	return nil
}
