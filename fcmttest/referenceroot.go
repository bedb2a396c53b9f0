package fcmttest

import (
	"fmt"

	"github.com/gordian-engine/fcmt/fchash"
)

// ReferenceRoot computes the root hash of a tree
// with the given level count over the given leaves,
// folding the full leaf row pairwise with ConcatHash.
// Leaf slots beyond len(leaves) take the hash of an all-zero block,
// matching the tree engine's default hash.
//
// This is a deliberately naive alternative implementation,
// used by tests to cross-check the incremental engine.
func ReferenceRoot(h fchash.Hasher, levels uint, leaves []fchash.Hash) fchash.Hash {
	capacity := uint(1) << (levels - 1)
	if uint(len(leaves)) > capacity {
		panic(fmt.Errorf(
			"BUG: %d leaves exceed capacity %d at %d levels",
			len(leaves), capacity, levels,
		))
	}

	defaultHash := h.GenerateHash(make([]byte, fchash.HashSize))

	row := make([]fchash.Hash, capacity)
	for i := range row {
		if i < len(leaves) {
			row[i] = leaves[i]
		} else {
			row[i] = defaultHash
		}
	}

	for len(row) > 1 {
		next := make([]fchash.Hash, len(row)/2)
		for i := range next {
			next[i] = h.ConcatHash(row[2*i], row[2*i+1])
		}
		row = next
	}

	return row[0]
}
