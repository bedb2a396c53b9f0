package fcsha3

import (
	"golang.org/x/crypto/sha3"

	"github.com/gordian-engine/fcmt/fchash"
)

// Hasher is a [fchash.Hasher] backed by SHA3-256 hashes.
//
// ConcatHash hashes the raw concatenation of the two inputs,
// left bytes immediately followed by right bytes,
// with no separator and no length prefix.
type Hasher struct{}

func (Hasher) GenerateHash(data []byte) fchash.Hash {
	return sha3.Sum256(data)
}

func (Hasher) ConcatHash(left, right fchash.Hash) fchash.Hash {
	h := sha3.New256()
	_, _ = h.Write(left[:])
	_, _ = h.Write(right[:])

	var out fchash.Hash
	h.Sum(out[:0])
	return out
}
