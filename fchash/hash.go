package fchash

import "encoding/hex"

// HashSize is the size in bytes of every hash the tree handles.
const HashSize = 32

// Hash is a fixed-size hash value.
// It is a plain value type:
// assignment copies, and comparison is byte equality.
type Hash [HashSize]byte

// Hex returns the lowercase hex encoding of h.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

// Short returns the hex encoding of the first three bytes of h,
// for compact log and diagnostic output.
func (h Hash) Short() string {
	return hex.EncodeToString(h[:3])
}

// Hasher is the user-defined interface for producing leaf and node hashes.
// The tree calls GenerateHash once at construction
// to derive the default hash of an all-zero block,
// and it calls ConcatHash for every internal node it recomputes.
//
// Both methods must be deterministic:
// the same input must always yield the same output.
// Implementations are expected to be stateless,
// as the tree takes exclusive ownership of the instance it is given.
type Hasher interface {
	// GenerateHash returns the hash of the raw data.
	GenerateHash(data []byte) Hash

	// ConcatHash returns the hash of the ordered pair of child hashes.
	// The ordering is part of the tree's format:
	// ConcatHash(a, b) does not in general equal ConcatHash(b, a).
	ConcatHash(left, right Hash) Hash
}
