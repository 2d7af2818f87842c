// Package domain defines the core types and configurations shared by
// the checksum adapters and the frame codec.
package domain

import (
	"github.com/iamNilotpal/koopman/internal/core/ports"
)

// ChecksumAlgorithm identifies a supported checksum algorithm.
type ChecksumAlgorithm string

// ChecksumOptions selects and configures the checksum used for frame
// trailers.
type ChecksumOptions struct {
	// Algorithm specifies which checksum algorithm to use.
	// Defaults to the 32-bit byte-wise Koopman checksum if not specified.
	Algorithm ChecksumAlgorithm

	// Seed is the constant XORed into the first data byte by the
	// Koopman family. It is part of the wire contract: a frame encoded
	// under one seed never verifies under another, so every producer
	// and verifier of a given stream must configure the same value.
	// Ignored by the non-Koopman algorithms. Defaults to the family's
	// recommended seed.
	Seed byte

	// Custom allows using a custom checksum implementation.
	// If provided, it takes precedence over Algorithm and Seed.
	Custom ports.Checksum
}
