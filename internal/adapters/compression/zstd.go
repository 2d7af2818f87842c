// Package compression provides payload compression for the frame codec
// using the zstd algorithm, with automatic skipping of payloads too
// small to benefit.
package compression

import (
	"fmt"
	"sync"

	"github.com/iamNilotpal/koopman/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

// Payloads below this size never shrink enough to pay for the zstd
// frame overhead.
const minCompressSize = 64

type Options struct {
	Level              uint8
	EncoderConcurrency uint8
	DecoderConcurrency uint8
}

// ZstdCompression implements the Compression port using zstd. It is
// safe for concurrent use. Payloads that would not shrink are returned
// unchanged, so callers must track compressed-ness out of band (the
// frame codec records it in a header flag).
type ZstdCompression struct {
	level   uint8
	mu      sync.RWMutex
	decoder *zstd.Decoder
	encoder *zstd.Encoder
}

// NewZstdCompression creates a new zstd compression instance with the
// specified level. It initializes both encoder and decoder with
// parallel processing capabilities.
//
// Returns an error if:
// - The compression level is invalid
// - The encoder or decoder initialization fails
func NewZstdCompression(opts Options) (*ZstdCompression, error) {
	if err := Validate(
		&domain.CompressionOptions{
			Level:              opts.Level,
			EncoderConcurrency: opts.EncoderConcurrency,
			DecoderConcurrency: opts.DecoderConcurrency,
		},
	); err != nil {
		return nil, err
	}

	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.EncoderLevel(opts.Level)),
		zstd.WithEncoderConcurrency(int(opts.EncoderConcurrency)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(int(opts.DecoderConcurrency)))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &ZstdCompression{encoder: encoder, decoder: decoder, level: opts.Level}, nil
}

// Compress compresses the input data using zstd. Small payloads and
// payloads that do not shrink are returned unchanged.
func (z *ZstdCompression) Compress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if len(data) < minCompressSize {
		return data, nil
	}

	compressed := z.encoder.EncodeAll(data, nil)
	if len(compressed) < len(data) {
		return compressed, nil
	}

	return data, nil
}

// Decompress restores the original data from its compressed form.
//
// Returns an error if:
// - The input data is not valid zstd compressed data
// - Decompression fails for any other reason
func (z *ZstdCompression) Decompress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	decompressed, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	return decompressed, nil
}

// Level returns the current compression level.
func (z *ZstdCompression) Level() uint8 {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.level
}

// Close releases all resources used by the compression instance. After
// closing, the instance cannot be used for compression or decompression.
func (z *ZstdCompression) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if err := z.encoder.Close(); err != nil {
		return fmt.Errorf("error closing encoder : %w", err)
	}

	z.decoder.Close()
	return nil
}
