package fcmt

import (
	"errors"
	"fmt"
	"log/slog"
	"math/bits"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/fcmt/fchash"
)

// MaxLevels is the largest level count [NewTree] accepts.
// A tree at MaxLevels allocates 2^27 - 1 node slots of 32 bytes each.
const MaxLevels = 27

// Tree is a fixed-capacity binary Merkle tree.
//
// The level count, and therefore the leaf capacity,
// is fixed at construction and never changes.
// Leaves occupy the contiguous tail of the node array;
// every internal node on the branch from a filled leaf
// to the floating root is recomputed eagerly on each mutation.
//
// A Tree provides no internal synchronization.
// Mutations require exclusive access,
// and read accessors are only safe while no mutation is in flight.
type Tree struct {
	log *slog.Logger

	hasher fchash.Hasher

	// Heap-layout node array of length 2^levels - 1.
	nodes []fchash.Hash

	// Tracks which entries of nodes hold a computed hash.
	// A slot may legitimately hold any value,
	// including the default hash,
	// so presence is tracked out of band rather than with a sentinel value.
	occupied *bitset.BitSet

	// Position of the root of the smallest complete subtree
	// containing every leaf added so far.
	root uint

	// Position of the first leaf slot.
	zeroIndex uint

	// Position of the next free leaf slot.
	nextAdd uint

	// Hash of an all-zero block,
	// standing in for any absent child during branch recomputation.
	defaultHash fchash.Hash

	maxSize uint
}

// TreeConfig is the configuration for [NewTree].
type TreeConfig struct {
	// The number of levels in the tree.
	// Must be in the range [1, MaxLevels].
	// The node array holds 2^Levels - 1 slots,
	// and the leaf capacity is 2^(Levels-1).
	Levels uint

	// Produces leaf and node hashes.
	// The tree takes exclusive ownership of the instance.
	Hasher fchash.Hasher
}

// validate panics if there are any illegal settings in the configuration.
func (c TreeConfig) validate() {
	if c.Levels < 1 || c.Levels > MaxLevels {
		panic(fmt.Errorf(
			"BUG: Levels must be in range [1, %d] (got %d)", MaxLevels, c.Levels,
		))
	}

	if c.Hasher == nil {
		panic(errors.New("BUG: Hasher may not be nil"))
	}
}

// NewTree returns an empty Tree sized according to cfg.
func NewTree(log *slog.Logger, cfg TreeConfig) *Tree {
	cfg.validate()

	nNodes := uint(1)<<cfg.Levels - 1
	zeroIndex := (nNodes - 1) / 2

	t := &Tree{
		log: log,

		hasher: cfg.Hasher,

		nodes:    make([]fchash.Hash, nNodes),
		occupied: bitset.New(nNodes),

		root:      zeroIndex,
		zeroIndex: zeroIndex,
		nextAdd:   zeroIndex,

		defaultHash: cfg.Hasher.GenerateHash(make([]byte, fchash.HashSize)),

		maxSize: uint(1) << (cfg.Levels - 1),
	}

	log.Info(
		"Created merkle tree",
		"levels", cfg.Levels,
		"nodes", nNodes,
		"capacity", t.maxSize,
	)

	return t
}

// Add appends value as the next leaf
// and returns its 0-based leaf index,
// which is also the 0-based insertion order.
// The returned index is the identifier accepted by [*Tree.Update].
//
// Add panics if the tree is already at capacity;
// adding past capacity is a caller bug, not a recoverable condition.
func (t *Tree) Add(value fchash.Hash) uint {
	if t.Size() >= t.maxSize {
		panic(fmt.Errorf(
			"BUG: tree is full (capacity %d)", t.maxSize,
		))
	}

	pos := t.nextAdd
	if t.occupied.Test(pos) {
		// The slot past the last add must always be empty.
		panic(fmt.Errorf(
			"BUG: add target slot %d already holds a value", pos,
		))
	}

	t.log.Debug("Adding leaf", "hash", value.Short(), "pos", pos)

	t.nodes[pos] = value
	t.occupied.Set(pos)
	t.nextAdd++

	// The floating root covers the smallest complete subtree
	// containing the new leaf count.
	// Integer log2 via bit length; no floating point.
	// Clamped to the tree level:
	// a full one-level tree would otherwise underflow the shift amount.
	currentLevel := min(uint(bits.Len(t.Size()+1))-1, t.TreeLevel())
	t.root = uint(1)<<(t.TreeLevel()-currentLevel) - 1

	t.updateBranch(pos)

	return pos - t.zeroIndex
}

// Update replaces the leaf at the given 0-based index with value,
// recomputes the branch above it,
// and returns the leaf's previous value.
//
// If index does not refer to a previously added leaf,
// Update returns an [UpdateIndexError] and the tree is left unchanged.
// The floating root and the insertion cursor are never affected,
// as the leaf count does not change.
func (t *Tree) Update(index uint, value fchash.Hash) (fchash.Hash, error) {
	pos := index + t.zeroIndex

	if pos >= t.nextAdd || pos < t.zeroIndex || !t.occupied.Test(pos) {
		return fchash.Hash{}, UpdateIndexError{Index: index, Size: t.Size()}
	}

	old := t.nodes[pos]
	t.nodes[pos] = value

	t.updateBranch(pos)

	t.log.Debug(
		"Updated leaf",
		"index", index,
		"old", old.Short(),
		"new", value.Short(),
	)

	return old, nil
}

// updateBranch recomputes every ancestor hash
// from pos up to and including the floating root.
// Absent children are read as the default hash.
//
// The walk stops at the floating root,
// so slots covering unused capacity are never written.
func (t *Tree) updateBranch(pos uint) {
	for {
		parent, ok := Parent(pos)
		if !ok {
			// Reached the true root.
			return
		}

		left, right := childrenOf(parent)
		t.nodes[parent] = t.hasher.ConcatHash(
			t.hashOrDefault(left), t.hashOrDefault(right),
		)
		t.occupied.Set(parent)

		if parent == t.root {
			return
		}

		pos = parent
	}
}

func (t *Tree) hashOrDefault(pos uint) fchash.Hash {
	if !t.occupied.Test(pos) {
		return t.defaultHash
	}
	return t.nodes[pos]
}

// Capacity returns the fixed number of leaf slots.
func (t *Tree) Capacity() uint {
	return t.maxSize
}

// Size returns the number of leaves added so far.
func (t *Tree) Size() uint {
	return t.nextAdd - t.zeroIndex
}

// TreeLevel returns the depth of the leaf row below the true root,
// which is one less than the configured level count.
func (t *Tree) TreeLevel() uint {
	return uint(bits.Len(uint(len(t.nodes)))) - 1
}

// HashOf returns the hash at the raw array position pos.
// The second return is false when the slot holds no computed hash,
// including any position outside the node array.
func (t *Tree) HashOf(pos uint) (fchash.Hash, bool) {
	if !t.occupied.Test(pos) {
		return fchash.Hash{}, false
	}
	return t.nodes[pos], true
}

// Root returns the current position of the floating root.
// It equals index 0 only once the tree is full.
func (t *Tree) Root() uint {
	return t.root
}

// RootHash returns the hash at the floating root.
// The second return is false while the tree is empty.
func (t *Tree) RootHash() (fchash.Hash, bool) {
	return t.HashOf(t.root)
}

// GenerateHash hashes raw data with the tree's own hasher,
// so callers can derive leaf hashes
// with the same scheme the tree uses internally.
func (t *Tree) GenerateHash(data []byte) fchash.Hash {
	return t.hasher.GenerateHash(data)
}

func (t *Tree) String() string {
	return fmt.Sprintf(
		"Length: %d, Capacity: %d, Root: %d, Size: %d, Next: %d",
		len(t.nodes), t.maxSize, t.root, t.Size(), t.nextAdd,
	)
}

// Describe renders every node slot as a short hex prefix,
// or "none" for slots holding no computed hash.
// It is intended for diagnostics only.
func (t *Tree) Describe() string {
	var sb strings.Builder
	sb.WriteByte('[')

	for i := range t.nodes {
		if i > 0 {
			sb.WriteByte(' ')
		}

		if h, ok := t.HashOf(uint(i)); ok {
			sb.WriteString(h.Short())
		} else {
			sb.WriteString("none")
		}
	}

	sb.WriteByte(']')
	return sb.String()
}
