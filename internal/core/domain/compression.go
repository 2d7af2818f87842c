package domain

// CompressionOptions configures payload compression for encoded
// frames. Compression settings affect both frame size and encoding
// cost; the checksum trailer always covers the bytes as written, so
// compression never weakens error detection.
type CompressionOptions struct {
	// Enable toggles compression of frame payloads.
	// When true, payloads are compressed with zstd at the specified
	// Level before the checksum trailer is computed. Payloads that do
	// not shrink are stored uncompressed.
	Enable bool

	// Level defines the zstd compression level when compression is
	// enabled. If not specified, the balanced default level is used.
	Level uint8

	// EncoderConcurrency specifies the number of concurrent compression
	// operations. Default is the number of CPU cores if set to 0.
	EncoderConcurrency uint8

	// DecoderConcurrency specifies the number of concurrent
	// decompression operations. Default is the number of CPU cores if
	// set to 0.
	DecoderConcurrency uint8
}
