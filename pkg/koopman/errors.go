package koopman

import "errors"

// Contract violations. These indicate caller bugs, not recoverable
// runtime conditions: a checksum is either computed completely and
// correctly or not at all.
var (
	// ErrEmptyData is returned when the data word is empty.
	ErrEmptyData = errors.New("koopman: empty data word")

	// ErrShortData is returned when the data word is shorter than the
	// variant's minimum length.
	ErrShortData = errors.New("koopman: data word shorter than variant minimum")

	// ErrUnalignedData is returned when the data word length does not
	// satisfy the variant's block alignment requirement.
	ErrUnalignedData = errors.New("koopman: data word length not aligned to block size")

	// ErrBadModulus is returned when the modulus is not one of the
	// variant's permitted constants. The moduli are fixed per variant;
	// they are chosen for their error-detection distance, not tunable.
	ErrBadModulus = errors.New("koopman: modulus not in the variant's permitted set")
)
