// Package koopman implements the Koopman family of modular checksums,
// a lightweight alternative to CRCs for platforms without CRC hardware
// or table-memory budget.
//
// Every variant shares the same skeleton: a running sum is seeded with
// the first data byte XORed against a seed constant, each subsequent
// block is shifted in and reduced modulo a carefully chosen constant,
// and a final "implicit trailing zero" block is folded in before the
// low bits are returned. The finalization step is what gives the family
// its guaranteed Hamming-distance properties for bounded message
// lengths; skipping it produces a different (weaker) checksum class.
//
// Variants differ only in output width (8/16/32 bits), block size
// (1, 2, 3 or 4 bytes per step), combine operator (bitwise OR for the
// 8-bit forms, addition for the wider forms), and whether a parity bit
// is packed into the low bit of the result.
//
// The seed is part of the wire contract: a producer and a verifier must
// use the same value or every comparison fails. It is therefore an
// explicit argument on every function rather than hidden package state.
// DefaultSeed is the recommended value.
//
// All functions are pure and safe for concurrent use.
package koopman
