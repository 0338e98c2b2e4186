package Trees

import (
	"github.com/g-m-twostay/go-bst/Queues"
)

// balancedHeight returns the number of nodes on the longest downward path from
// n, or -1 as soon as some subtree under n is found unbalanced. -1 is passed
// up without comparing further heights.
func balancedHeight[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	lh := balancedHeight(n.l)
	if lh == -1 {
		return -1
	}
	rh := balancedHeight(n.r)
	if rh == -1 || lh-rh > 1 || rh-lh > 1 {
		return -1
	}
	return max(lh, rh) + 1
}

// IsBalanced [Tree.IsBalanced]. Recursive. The empty tree is balanced.
// Time: O(n); Space: O(D)
func (u *BST[T]) IsBalanced() bool {
	return balancedHeight(u.root) != -1
}

// Height of the tree in edges. Both the empty tree and a single node have
// height 0. Counts levels breadth first, so it's safe on degenerate trees.
// Time: O(n); Space: O(width)
func (u *BST[T]) Height() int {
	if u.root == nil {
		return 0
	}
	q := Queues.MakeArrayQueue[*Node[T]](uint(u.sz/2 + 1))
	q.Push(u.root)
	h := -1
	for !q.Empty() {
		h++
		for n := q.Size(); n > 0; n-- {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return h
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return minNode(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return maxNode(u.root).v, true
}

// SecondHighest [Tree.SecondHighest]
// Walks the right spine. Every node visited has a child. When the current
// node has no right child, it's the maximum and the answer is the largest
// value in its left subtree. When its right child is a leaf, that child is the
// maximum and the current node is its predecessor. Otherwise step right.
// Time: O(D); Space: O(1)
func (u *BST[T]) SecondHighest() (T, error) {
	if u.root == nil || u.root.isLeaf() {
		return *new(T), TrivialTreeError{u.sz}
	}
	for cur := u.root; ; cur = cur.r {
		if cur.r == nil {
			return maxNode(cur.l).v, nil
		} else if cur.r.isLeaf() {
			return cur.v, nil
		}
	}
}

// Predecessor [Tree.Predecessor]
// v doesn't have to be in the tree.
// Time: O(D); Space: O(1)
func (u *BST[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// v doesn't have to be in the tree.
// Time: O(D); Space: O(1)
func (u *BST[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// KLargest [Tree.KLargest]
// KLargest(1) is the Maximum. Returns (x,true) if 1<=k<=Size(), otherwise (0,false).
// Nodes don't store subtree sizes, so this walks the tree in descending order.
// Time: O(D+k); Space: O(D)
func (u *BST[T]) KLargest(k uint) (T, bool) {
	if k == 0 || k > uint(u.sz) {
		return *new(T), false
	}
	next := u.Descend()
	v, _ := next()
	for ; k > 1; k-- {
		v, _ = next()
	}
	return v, true
}

// RankOf [Tree.RankOf]
// Time: O(D+r); Space: O(D)
func (u *BST[T]) RankOf(v T) uint {
	next := u.Ascend()
	for r := uint(1); ; r++ {
		a, ok := next()
		if !ok || a > v {
			return 0
		} else if a == v {
			return r
		}
	}
}
