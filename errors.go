package fcmt

import "fmt"

// UpdateIndexError is returned from [*Tree.Update]
// when the given leaf index does not refer to a previously added leaf.
// The tree is left unchanged when this error is returned.
type UpdateIndexError struct {
	// The leaf index the caller passed.
	Index uint

	// The number of leaves in the tree at the time of the call.
	Size uint
}

func (e UpdateIndexError) Error() string {
	return fmt.Sprintf(
		"cannot update leaf index %d: tree has %d leaves", e.Index, e.Size,
	)
}
