package fcmt_test

import (
	"testing"

	"github.com/gordian-engine/fcmt"
	"github.com/stretchr/testify/require"
)

func TestChildPositions(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint(1), fcmt.LeftChild(0))
	require.Equal(t, uint(2), fcmt.RightChild(0))

	require.Equal(t, uint(3), fcmt.LeftChild(1))
	require.Equal(t, uint(4), fcmt.RightChild(1))

	require.Equal(t, uint(11), fcmt.LeftChild(5))
	require.Equal(t, uint(12), fcmt.RightChild(5))
}

func TestParent(t *testing.T) {
	t.Parallel()

	t.Run("true root has no parent", func(t *testing.T) {
		t.Parallel()

		_, ok := fcmt.Parent(0)
		require.False(t, ok)
	})

	t.Run("inverts child positions", func(t *testing.T) {
		t.Parallel()

		for p := uint(0); p < 31; p++ {
			got, ok := fcmt.Parent(fcmt.LeftChild(p))
			require.True(t, ok)
			require.Equal(t, p, got)

			got, ok = fcmt.Parent(fcmt.RightChild(p))
			require.True(t, ok)
			require.Equal(t, p, got)
		}
	})
}
