package Trees

// Node in a BST. A node is owned by exactly one slot: either the root of the
// tree or the l/r field of its parent. There are no parent pointers; walks that
// need the parent keep it as local state.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

// Value held by n.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child of n, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

func (n *Node[T]) isLeaf() bool {
	return n.l == nil && n.r == nil
}

// minNode is the leftmost node of the subtree rooted at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func minNode[T any](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// maxNode is the rightmost node of the subtree rooted at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func maxNode[T any](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}
