package frame_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/koopman/internal/adapters/checksum"
	"github.com/iamNilotpal/koopman/internal/core/domain"
	"github.com/iamNilotpal/koopman/internal/core/services"
	"github.com/iamNilotpal/koopman/internal/core/services/frame"
	"github.com/iamNilotpal/koopman/pkg/koopman"
)

func newCodec(t *testing.T, algorithm domain.ChecksumAlgorithm, seed byte) *frame.Codec {
	t.Helper()

	codec, err := frame.New(&frame.Options{
		Checksum: &domain.ChecksumOptions{Algorithm: algorithm, Seed: seed},
	})
	require.NoError(t, err)
	t.Cleanup(func() { codec.Close() })
	return codec
}

func TestRoundTrip(t *testing.T) {
	payload := []byte("hello, frames")

	algorithms := []domain.ChecksumAlgorithm{
		checksum.Koopman8,
		checksum.Koopman8Block3,
		checksum.Koopman16,
		checksum.Koopman16Parity,
		checksum.Koopman32,
		checksum.Koopman32Parity,
		checksum.CRC32IEEE,
		checksum.XXHash,
	}

	for _, algorithm := range algorithms {
		t.Run(string(algorithm), func(t *testing.T) {
			codec := newCodec(t, algorithm, koopman.DefaultSeed)

			encoded, err := codec.Encode(payload)
			require.NoError(t, err)

			decoded, err := codec.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, payload, decoded)
		})
	}
}

func TestCompressedRoundTrip(t *testing.T) {
	// Repetitive and well above the compressor's minimum size, so the
	// frame is actually stored compressed.
	payload := bytes.Repeat([]byte("compress me, I am highly redundant. "), 64)

	codec, err := frame.New(&frame.Options{
		Checksum: &domain.ChecksumOptions{
			Algorithm: checksum.Koopman32,
			Seed:      koopman.DefaultSeed,
		},
		Compression: &domain.CompressionOptions{Enable: true, Level: 3},
	})
	require.NoError(t, err)
	defer codec.Close()

	encoded, err := codec.Encode(payload)
	require.NoError(t, err)
	assert.Less(t, len(encoded), len(payload), "frame should be smaller than the raw payload")

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestCorruptionDetected(t *testing.T) {
	payload := []byte("trust, but verify")
	codec := newCodec(t, checksum.Koopman16, koopman.DefaultSeed)

	encoded, err := codec.Encode(payload)
	require.NoError(t, err)

	// Flip one bit in every covered position: header fields past the
	// structural checks, and every body byte.
	for i := 4; i < len(encoded)-2; i++ {
		corrupted := append([]byte(nil), encoded...)
		corrupted[i] ^= 0x01

		_, err := codec.Decode(corrupted)
		if i >= 6 && i < 10 {
			// Length field corruption fails structurally; nothing
			// decodes either way.
			assert.Error(t, err, "offset %d", i)
		} else {
			// Flags, reserved byte and body corruption reach the
			// checksum.
			assert.ErrorIs(t, err, frame.ErrChecksumMismatch, "offset %d", i)

			var frameErr *services.FrameError
			require.ErrorAs(t, err, &frameErr)
			assert.Equal(t, domain.ErrorCorruption, frameErr.Category)
		}
	}
}

func TestTrailerCorruptionDetected(t *testing.T) {
	codec := newCodec(t, checksum.Koopman32, koopman.DefaultSeed)

	encoded, err := codec.Encode([]byte("payload"))
	require.NoError(t, err)

	corrupted := append([]byte(nil), encoded...)
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err = codec.Decode(corrupted)
	assert.ErrorIs(t, err, frame.ErrChecksumMismatch)
}

func TestStructuralFailures(t *testing.T) {
	codec := newCodec(t, checksum.Koopman32, koopman.DefaultSeed)

	encoded, err := codec.Encode([]byte("structural"))
	require.NoError(t, err)

	t.Run("empty payload", func(t *testing.T) {
		_, err := codec.Encode(nil)
		assert.ErrorIs(t, err, frame.ErrEmptyPayload)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := codec.Decode(encoded[:8])
		assert.ErrorIs(t, err, frame.ErrFrameTooShort)
	})

	t.Run("bad magic", func(t *testing.T) {
		corrupted := append([]byte(nil), encoded...)
		corrupted[0] = 0x00
		_, err := codec.Decode(corrupted)
		assert.ErrorIs(t, err, frame.ErrBadMagic)
	})

	t.Run("unknown version", func(t *testing.T) {
		corrupted := append([]byte(nil), encoded...)
		corrupted[2] = 0xFF
		_, err := codec.Decode(corrupted)
		assert.ErrorIs(t, err, frame.ErrUnknownVersion)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := codec.Decode(encoded[:len(encoded)-1])
		assert.ErrorIs(t, err, frame.ErrLengthMismatch)
	})
}

func TestAlgorithmMismatch(t *testing.T) {
	producer := newCodec(t, checksum.Koopman16, koopman.DefaultSeed)
	verifier := newCodec(t, checksum.Koopman32, koopman.DefaultSeed)

	encoded, err := producer.Encode([]byte("wrong algorithm"))
	require.NoError(t, err)

	_, err = verifier.Decode(encoded)
	assert.ErrorIs(t, err, frame.ErrAlgorithmMismatch)
}

func TestSeedMismatch(t *testing.T) {
	producer := newCodec(t, checksum.Koopman32, koopman.DefaultSeed)
	verifier := newCodec(t, checksum.Koopman32, 0x01)

	encoded, err := producer.Encode([]byte("wrong seed"))
	require.NoError(t, err)

	// Structurally identical frames, but the verifier's seed disagrees.
	_, err = verifier.Decode(encoded)
	assert.ErrorIs(t, err, frame.ErrChecksumMismatch)
}

func TestCompressedFrameNeedsCompression(t *testing.T) {
	payload := bytes.Repeat([]byte("redundant redundant "), 64)

	producer, err := frame.New(&frame.Options{
		Checksum: &domain.ChecksumOptions{
			Algorithm: checksum.Koopman32,
			Seed:      koopman.DefaultSeed,
		},
		Compression: &domain.CompressionOptions{Enable: true, Level: 3},
	})
	require.NoError(t, err)
	defer producer.Close()

	verifier := newCodec(t, checksum.Koopman32, koopman.DefaultSeed)

	encoded, err := producer.Encode(payload)
	require.NoError(t, err)

	_, err = verifier.Decode(encoded)
	assert.ErrorIs(t, err, frame.ErrCompressedFrame)
}

func TestSmallPayloadStaysUncompressed(t *testing.T) {
	// Below the compressor's threshold the body is stored verbatim, so
	// a codec without compression can still decode it.
	payload := []byte("tiny")

	producer, err := frame.New(&frame.Options{
		Checksum: &domain.ChecksumOptions{
			Algorithm: checksum.Koopman32,
			Seed:      koopman.DefaultSeed,
		},
		Compression: &domain.CompressionOptions{Enable: true, Level: 3},
	})
	require.NoError(t, err)
	defer producer.Close()

	verifier := newCodec(t, checksum.Koopman32, koopman.DefaultSeed)

	encoded, err := producer.Encode(payload)
	require.NoError(t, err)

	decoded, err := verifier.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestDefaultsApplied(t *testing.T) {
	codec, err := frame.New(nil)
	require.NoError(t, err)
	defer codec.Close()

	assert.Equal(t, string(checksum.Koopman32), codec.Algorithm())

	encoded, err := codec.Encode([]byte("defaults"))
	require.NoError(t, err)

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("defaults"), decoded)
}

func TestInvalidOptions(t *testing.T) {
	_, err := frame.New(&frame.Options{
		Checksum: &domain.ChecksumOptions{Algorithm: "adler32"},
	})
	require.Error(t, err)

	var frameErr *services.FrameError
	require.ErrorAs(t, err, &frameErr)
	assert.Equal(t, domain.ErrorConfig, frameErr.Category)
}

func TestConcurrentEncode(t *testing.T) {
	codec := newCodec(t, checksum.Koopman32, koopman.DefaultSeed)
	payload := []byte("concurrent use of one codec")

	reference, err := codec.Encode(payload)
	require.NoError(t, err)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				encoded, err := codec.Encode(payload)
				if err != nil {
					done <- err
					return
				}
				if !bytes.Equal(encoded, reference) {
					done <- errors.New("encode result varied under concurrency")
					return
				}
				if _, err := codec.Decode(encoded); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
