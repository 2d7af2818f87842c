// Package frame implements a minimal record framing codec around the
// checksum adapters: a fixed binary header, an optionally compressed
// payload, and a checksum trailer covering both. It exists to
// demonstrate the producer/verifier contract of the Koopman family:
// both sides of a stream construct their codec from the same options,
// seed included, or nothing verifies.
package frame

import (
	"encoding/binary"

	checksumadapter "github.com/iamNilotpal/koopman/internal/adapters/checksum"
	"github.com/iamNilotpal/koopman/internal/adapters/compression"
	"github.com/iamNilotpal/koopman/internal/core/domain"
	"github.com/iamNilotpal/koopman/internal/core/ports"
	"github.com/iamNilotpal/koopman/internal/core/services"
	"github.com/iamNilotpal/koopman/pkg/pool"
)

// Codec encodes payloads into self-checking frames and decodes them
// back, verifying the trailer before releasing any payload bytes.
// A Codec is safe for concurrent use.
type Codec struct {
	opts       *Options
	hasher     ports.Checksum
	compressor ports.Compression // nil when compression is disabled
	algCode    byte
	buffers    *pool.BufferPool
}

// New builds a Codec from opts, filling unset fields with defaults.
func New(opts *Options) (*Codec, error) {
	opts = prepareDefaults(opts)
	if err := Validate(opts); err != nil {
		return nil, services.NewFrameError(domain.ErrorConfig, "new", err)
	}

	hasher, err := checksumadapter.New(opts.Checksum)
	if err != nil {
		return nil, services.NewFrameError(domain.ErrorConfig, "new", err)
	}

	var compressor ports.Compression
	if opts.Compression.Enable {
		zstd, err := compression.NewZstdCompression(compression.Options{
			Level:              opts.Compression.Level,
			EncoderConcurrency: opts.Compression.EncoderConcurrency,
			DecoderConcurrency: opts.Compression.DecoderConcurrency,
		})
		if err != nil {
			return nil, services.NewFrameError(domain.ErrorConfig, "new", err)
		}
		compressor = zstd
	}

	return &Codec{
		opts:       opts,
		hasher:     hasher,
		compressor: compressor,
		algCode:    algorithmCodes[domain.ChecksumAlgorithm(hasher.Name())],
		buffers:    pool.NewBufferPool(4096),
	}, nil
}

// Algorithm returns the name of the configured trailer algorithm.
func (c *Codec) Algorithm() string { return c.hasher.Name() }

// Encode wraps payload in a frame. The returned slice is freshly
// allocated; payload is never modified.
func (c *Codec) Encode(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, services.NewFrameError(domain.ErrorEncode, "encode", ErrEmptyPayload)
	}

	body := payload
	var flags byte
	if c.compressor != nil {
		compressed, err := c.compressor.Compress(payload)
		if err != nil {
			return nil, services.NewFrameError(domain.ErrorCompression, "encode", err)
		}
		// Compress hands back the original payload when shrinking
		// is not worthwhile; only a strictly smaller result is
		// stored compressed.
		if len(compressed) < len(payload) {
			body = compressed
			flags |= flagCompressed
		}
	}

	buf := c.buffers.Get()
	defer c.buffers.Put(buf)

	var hdr [headerSize]byte
	binary.BigEndian.PutUint16(hdr[0:2], frameMagic)
	hdr[2] = frameVersion
	hdr[3] = c.algCode
	hdr[4] = flags
	binary.BigEndian.PutUint32(hdr[6:10], uint32(len(body)))

	buf.Write(hdr[:])
	buf.Write(body)

	sum, err := c.hasher.Calculate(buf.Bytes())
	if err != nil {
		return nil, services.NewFrameError(domain.ErrorEncode, "encode", err)
	}

	size := int(c.hasher.Size())
	var trailer [8]byte
	binary.BigEndian.PutUint64(trailer[:], sum)
	buf.Write(trailer[8-size:])

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Decode verifies the frame's checksum trailer and returns the
// payload, decompressed if the frame was stored compressed. On any
// structural or checksum failure no payload bytes are returned.
func (c *Codec) Decode(data []byte) ([]byte, error) {
	size := int(c.hasher.Size())
	if len(data) < headerSize+size {
		return nil, services.NewFrameError(domain.ErrorDecode, "decode", ErrFrameTooShort)
	}
	if binary.BigEndian.Uint16(data[0:2]) != frameMagic {
		return nil, services.NewFrameError(domain.ErrorDecode, "decode", ErrBadMagic)
	}
	if data[2] != frameVersion {
		return nil, services.NewFrameError(domain.ErrorDecode, "decode", ErrUnknownVersion)
	}
	if data[3] != c.algCode {
		return nil, services.NewFrameError(domain.ErrorDecode, "decode", ErrAlgorithmMismatch)
	}

	bodyLen := binary.BigEndian.Uint32(data[6:10])
	if len(data) != headerSize+int(bodyLen)+size {
		return nil, services.NewFrameError(domain.ErrorDecode, "decode", ErrLengthMismatch)
	}

	var expected uint64
	for _, b := range data[len(data)-size:] {
		expected = expected<<8 | uint64(b)
	}
	if !c.hasher.Verify(data[:len(data)-size], expected) {
		return nil, services.NewFrameError(domain.ErrorCorruption, "decode", ErrChecksumMismatch)
	}

	body := data[headerSize : len(data)-size]
	if data[4]&flagCompressed != 0 {
		if c.compressor == nil {
			return nil, services.NewFrameError(domain.ErrorDecode, "decode", ErrCompressedFrame)
		}
		payload, err := c.compressor.Decompress(body)
		if err != nil {
			return nil, services.NewFrameError(domain.ErrorCompression, "decode", err)
		}
		return payload, nil
	}

	payload := make([]byte, len(body))
	copy(payload, body)
	return payload, nil
}

// Close releases compression resources, if any.
func (c *Codec) Close() error {
	if c.compressor != nil {
		return c.compressor.Close()
	}
	return nil
}
