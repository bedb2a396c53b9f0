// Package fcmt implements a fixed-capacity binary Merkle tree
// with a floating root.
//
// The tree is backed by a single flat node array in heap layout:
// the children of position p are at 2p+1 and 2p+2,
// and index 0 is the true root.
// Leaves are appended with [*Tree.Add]
// and replaced in place with [*Tree.Update];
// each mutation recomputes only the branch
// from the touched leaf up to the floating root.
//
// The floating root is the root of the smallest complete subtree
// containing every leaf added so far.
// It starts at the first leaf slot and rises toward index 0
// as leaves accumulate,
// so hashes covering unused capacity are never materialized.
//
// Hashing is delegated to an [fchash.Hasher] injected at construction.
// The fcsha3 package provides the SHA3-256 reference implementation.
package fcmt
