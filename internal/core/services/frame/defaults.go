package frame

import (
	"runtime"

	"github.com/iamNilotpal/koopman/internal/adapters/checksum"
	"github.com/iamNilotpal/koopman/internal/adapters/compression"
)

// Returns codec settings suitable for most payloads: the 32-bit
// byte-wise Koopman checksum with the recommended seed, and balanced
// zstd compression.
func DefaultOptions() *Options {
	return &Options{
		Checksum:    checksum.DefaultOptions(),
		Compression: compression.DefaultOptions(),
	}
}

func prepareDefaults(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}

	if opts.Checksum == nil {
		opts.Checksum = checksum.DefaultOptions()
	}

	if opts.Compression == nil {
		opts.Compression = compression.DefaultOptions()
	}

	if opts.Compression.Enable {
		if opts.Compression.Level == 0 {
			opts.Compression.Level = compression.DefaultLevel
		}
		if opts.Compression.EncoderConcurrency == 0 {
			opts.Compression.EncoderConcurrency = uint8(runtime.NumCPU())
		}
		if opts.Compression.DecoderConcurrency == 0 {
			opts.Compression.DecoderConcurrency = uint8(runtime.NumCPU())
		}
	}

	return opts
}
