package fcmt

// LeftChild returns the position of p's left child
// in the heap-layout node array.
func LeftChild(p uint) uint {
	return 2*p + 1
}

// RightChild returns the position of p's right child
// in the heap-layout node array.
func RightChild(p uint) uint {
	return 2*p + 2
}

// Parent returns the position of p's parent.
// The second return is false when p is the true root,
// which has no parent.
func Parent(p uint) (uint, bool) {
	if p == 0 {
		return 0, false
	}
	return (p - 1) / 2, true
}

func childrenOf(p uint) (left, right uint) {
	return LeftChild(p), RightChild(p)
}
