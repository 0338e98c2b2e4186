package Trees

import (
	"slices"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-bst/Queues"
)

// Each traversal builds a new slice on every call, so they can be called
// repeatedly and don't share state. The tree must not be modified while a
// closure from Ascend or Descend is in use.

// PreOrder visits a node, then its left subtree, then its right subtree.
// Time: O(n); Space: O(D)
func (u *BST[T]) PreOrder() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	st := arraystack.New()
	st.Push(u.root)
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		vs = append(vs, cur.v)
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
	return vs
}

// InOrder visits the left subtree, then the node, then the right subtree,
// giving the values in ascending order.
// Time: O(n); Space: O(D)
func (u *BST[T]) InOrder() []T {
	vs := make([]T, 0, u.sz)
	st := arraystack.New()
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		vs = append(vs, cur.v)
		for cur = cur.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
	}
	return vs
}

// PostOrder visits the left subtree, then the right subtree, then the node.
// It collects node-right-left and reverses the result.
// Time: O(n); Space: O(D)
func (u *BST[T]) PostOrder() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	st := arraystack.New()
	st.Push(u.root)
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		vs = append(vs, cur.v)
		if cur.l != nil {
			st.Push(cur.l)
		}
		if cur.r != nil {
			st.Push(cur.r)
		}
	}
	slices.Reverse(vs)
	return vs
}

// BreadthFirst visits the nodes level by level, left to right within a level.
// Time: O(n); Space: O(width)
func (u *BST[T]) BreadthFirst() []T {
	vs := make([]T, 0, u.sz)
	q := Queues.MakeArrayQueue[*Node[T]](uint(u.sz/2 + 1))
	if u.root != nil {
		q.Push(u.root)
	}
	for !q.Empty() {
		cur, _ := q.Pop()
		vs = append(vs, cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return vs
}

// PreOrderRecursively is PreOrder implemented recursively.
// Time: O(n); Space: O(D)
func (u *BST[T]) PreOrderRecursively() []T {
	vs := make([]T, 0, u.sz)
	var f func(*Node[T])
	f = func(n *Node[T]) {
		vs = append(vs, n.v)
		if n.l != nil {
			f(n.l)
		}
		if n.r != nil {
			f(n.r)
		}
	}
	if u.root != nil {
		f(u.root)
	}
	return vs
}

// InOrderRecursively is InOrder implemented recursively.
// Time: O(n); Space: O(D)
func (u *BST[T]) InOrderRecursively() []T {
	vs := make([]T, 0, u.sz)
	var f func(*Node[T])
	f = func(n *Node[T]) {
		if n.l != nil {
			f(n.l)
		}
		vs = append(vs, n.v)
		if n.r != nil {
			f(n.r)
		}
	}
	if u.root != nil {
		f(u.root)
	}
	return vs
}

// PostOrderRecursively is PostOrder implemented recursively.
// Time: O(n); Space: O(D)
func (u *BST[T]) PostOrderRecursively() []T {
	vs := make([]T, 0, u.sz)
	var f func(*Node[T])
	f = func(n *Node[T]) {
		if n.l != nil {
			f(n.l)
		}
		if n.r != nil {
			f(n.r)
		}
		vs = append(vs, n.v)
	}
	if u.root != nil {
		f(u.root)
	}
	return vs
}

// Ascend returns a closure function f acting like an iterator. f gives the
// values in ascending order. Calling f is like calling "Next()" of iterators:
// val, valid=f(). val is meaningful only if valid is true. Once valid is
// false, f is exhausted and stays so.
// Time: f(): amortized O(1). Space: O(D)
func (u *BST[T]) Ascend() func() (T, bool) {
	st := arraystack.New()
	pushLeft := func(n *Node[T]) {
		for ; n != nil; n = n.l {
			st.Push(n)
		}
	}
	pushLeft(u.root)
	return func() (r T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		cur := top.(*Node[T])
		pushLeft(cur.r)
		return cur.v, true
	}
}

// Descend is Ascend in descending order.
// Time: f(): amortized O(1). Space: O(D)
func (u *BST[T]) Descend() func() (T, bool) {
	st := arraystack.New()
	pushRight := func(n *Node[T]) {
		for ; n != nil; n = n.r {
			st.Push(n)
		}
	}
	pushRight(u.root)
	return func() (r T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		cur := top.(*Node[T])
		pushRight(cur.l)
		return cur.v, true
	}
}
