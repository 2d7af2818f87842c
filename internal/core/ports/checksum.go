package ports

// Checksum defines the interface for calculating and verifying data
// checksums. Implementations fix their algorithm, modulus and seed at
// construction time, so a single instance is safe for concurrent use.
type Checksum interface {
	// Calculate computes the checksum for the provided data.
	// It returns an error when the data violates the algorithm's
	// length or alignment contract; such errors are caller bugs,
	// never transient conditions.
	Calculate(data []byte) (uint64, error)

	// Verify reports whether the calculated checksum of data matches
	// the expected value. Data that violates the algorithm's contract
	// never verifies.
	Verify(data []byte, expected uint64) bool

	// Size returns the checksum width in bytes.
	Size() uint8

	// Name returns the algorithm identifier.
	Name() string
}
