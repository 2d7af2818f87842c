package domain

// ErrorCategory classifies errors surfaced by the frame codec. This
// helps callers separate malformed input, detected corruption, and
// configuration mistakes.
type ErrorCategory int

const (
	// ErrorConfig indicates invalid codec configuration, such as an
	// unsupported algorithm or an out-of-range compression level.
	ErrorConfig ErrorCategory = iota + 1

	// ErrorEncode indicates a failure while building a frame, such as
	// a payload violating the checksum algorithm's length contract.
	ErrorEncode

	// ErrorDecode indicates a structurally invalid frame: truncated,
	// wrong magic, unknown version, or algorithm mismatch.
	ErrorDecode

	// ErrorCorruption indicates a frame whose checksum trailer does not
	// match its contents. The payload is never returned in this case.
	ErrorCorruption

	// ErrorCompression indicates a compression or decompression
	// failure.
	ErrorCompression
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorConfig:
		return "config"
	case ErrorEncode:
		return "encode"
	case ErrorDecode:
		return "decode"
	case ErrorCorruption:
		return "corruption"
	case ErrorCompression:
		return "compression"
	default:
		return "unknown"
	}
}
