package fchashtest

import (
	"testing"

	"github.com/gordian-engine/fcmt/fchash"
	"github.com/stretchr/testify/require"
)

// HasherFactory returns a fresh Hasher under test.
type HasherFactory func() fchash.Hasher

// TestHasherCompliance runs the standard conformance checks
// every [fchash.Hasher] implementation must pass
// before it can back a tree.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("generate is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()

		h01 := h.GenerateHash([]byte("deterministic_data"))
		h02 := h.GenerateHash([]byte("deterministic_data"))

		require.Equal(t, h01, h02)
	})

	t.Run("generate respects input", func(t *testing.T) {
		t.Parallel()

		h := f()

		h01 := h.GenerateHash([]byte("input_1"))
		h02 := h.GenerateHash([]byte("input_2"))

		require.NotEqual(t, h01, h02)
	})

	t.Run("concat is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()

		left := h.GenerateHash([]byte("left_child"))
		right := h.GenerateHash([]byte("right_child"))

		h01 := h.ConcatHash(left, right)
		h02 := h.ConcatHash(left, right)

		require.Equal(t, h01, h02)
	})

	t.Run("concat respects order", func(t *testing.T) {
		t.Parallel()

		h := f()

		left := h.GenerateHash([]byte("left_child"))
		right := h.GenerateHash([]byte("right_child"))

		require.NotEqual(t, h.ConcatHash(left, right), h.ConcatHash(right, left))
	})

	t.Run("concat respects both children", func(t *testing.T) {
		t.Parallel()

		h := f()

		a := h.GenerateHash([]byte("child_a"))
		b := h.GenerateHash([]byte("child_b"))
		c := h.GenerateHash([]byte("child_c"))

		require.NotEqual(t, h.ConcatHash(a, b), h.ConcatHash(a, c))
		require.NotEqual(t, h.ConcatHash(a, c), h.ConcatHash(b, c))
	})
}
