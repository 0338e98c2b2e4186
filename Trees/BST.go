package Trees

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"
)

var (
	_ Tree[int]            = (*BST[int])(nil)
	_ containers.Container = (*BST[int])(nil)
)

// BST is a binary search tree with no repeated values. It does no
// rebalancing, so its height D depends on the insertion order: D=O(log n)
// for random orders and D=n-1 when values arrive sorted. Every method that
// has both an iterative and a recursive variant produces the same result;
// prefer the iterative ones when D may be large, since the recursive ones use
// goroutine stack proportional to D.
// The zero value is an empty tree ready to use. A BST isn't safe for
// concurrent use.
type BST[T constraints.Ordered] struct {
	root *Node[T]
	sz   int
}

// New returns an empty BST.
func New[T constraints.Ordered]() *BST[T] {
	return new(BST[T])
}

// From builds a height-balanced BST from the given slice recursively, by
// always rooting a subtree at the middle element. This is faster than
// repeatedly calling Insert.
// The given slice must be sorted in ascending order and mustn't contain
// duplicate elements. If safe==true, From checks this and panics with
// InvalidSliceError when it doesn't hold. Otherwise it is up to the caller,
// and a bad slice gives a corrupt tree.
// Time: O(n).
func From[T constraints.Ordered](sli []T, safe bool) *BST[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if !(sli[i-1] < sli[i]) {
				panic(InvalidSliceError[T]{sli[i-1], sli[i]})
			}
		}
	}
	var build func([]T) *Node[T]
	build = func(s []T) *Node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	return &BST[T]{build(sli), len(sli)}
}

// Root node of the tree, nil when empty.
func (u *BST[T]) Root() *Node[T] {
	return u.root
}

// Insert v into the tree. Walks down from the root and attaches a new leaf at
// the first absent slot. Returns u on success, or DuplicateValueError without
// modifying u if v is already present.
// Time: O(D); Space: O(1)
func (u *BST[T]) Insert(v T) (*BST[T], error) {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else if v > cur.v {
			curPtr = &cur.r
		} else {
			return nil, DuplicateValueError[T]{v}
		}
	}
	*curPtr = &Node[T]{v: v}
	u.sz++
	return u, nil
}

// insert v into the subtree whose root is stored at curPtr. curPtr is the
// slot the new leaf is written to once it's reached. Returns false if v is
// already present.
func insert[T constraints.Ordered](curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &Node[T]{v: v}
		return true
	} else if v < cur.v {
		return insert(&cur.l, v)
	} else if v > cur.v {
		return insert(&cur.r, v)
	}
	return false
}

// InsertRecursively is Insert implemented recursively. Both give the same tree
// for the same sequence of values.
// Time: O(D); Space: O(D)
func (u *BST[T]) InsertRecursively(v T) (*BST[T], error) {
	if !insert(&u.root, v) {
		return nil, DuplicateValueError[T]{v}
	}
	u.sz++
	return u, nil
}

// Find the node holding v.
// Time: O(D); Space: O(1)
func (u *BST[T]) Find(v T) (*Node[T], bool) {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return cur, true
		}
	}
	return nil, false
}

func find[T constraints.Ordered](cur *Node[T], v T) *Node[T] {
	if cur == nil {
		return nil
	} else if v < cur.v {
		return find(cur.l, v)
	} else if v > cur.v {
		return find(cur.r, v)
	}
	return cur
}

// FindRecursively is Find implemented recursively.
// Time: O(D); Space: O(D)
func (u *BST[T]) FindRecursively(v T) (*Node[T], bool) {
	n := find(u.root, v)
	return n, n != nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	_, ok := u.Find(v)
	return ok
}

// Remove v from the tree and return it. The search keeps the parent and the
// side the current node hangs on, so the target can be unlinked without
// parent pointers. A target with two children is replaced by its in-order
// successor, which is relinked rather than copied. The removed node's links
// are cleared, so a *Node obtained earlier from Find no longer reaches the
// tree.
// Returns NotFoundError without modifying u if v is absent.
// Time: O(D); Space: O(1)
func (u *BST[T]) Remove(v T) (T, error) {
	var parent *Node[T]
	isLeft := false
	cur := u.root
	for cur != nil && v != cur.v {
		parent = cur
		if v < cur.v {
			cur, isLeft = cur.l, true
		} else {
			cur, isLeft = cur.r, false
		}
	}
	if cur == nil {
		return *new(T), NotFoundError[T]{v}
	}

	var repl *Node[T]
	if cur.l == nil { // covers the leaf case, repl stays nil.
		repl = cur.r
	} else if cur.r == nil {
		repl = cur.l
	} else {
		succParent, succ := cur, cur.r
		for succ.l != nil {
			succParent, succ = succ, succ.l
		}
		if succParent != cur {
			succParent.l = succ.r
			succ.r = cur.r
		}
		succ.l = cur.l
		repl = succ
	}

	if parent == nil {
		u.root = repl
	} else if isLeft {
		parent.l = repl
	} else {
		parent.r = repl
	}
	cur.l, cur.r = nil, nil
	u.sz--
	return cur.v, nil
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() int {
	return u.sz
}

// Empty reports whether the tree has no elements.
func (u *BST[T]) Empty() bool {
	return u.root == nil
}

// Clear the tree. The nodes are left to the garbage collector.
func (u *BST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Values in ascending order.
func (u *BST[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.sz)
	for next := u.Ascend(); ; {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Corrupt [Tree.Corrupt]
// Also reports a tree whose cached size doesn't match its node count.
// Time: O(n); Space: O(D)
func (u *BST[T]) Corrupt() bool {
	next, n := u.Ascend(), 0
	prev, ok := next()
	for ok {
		n++
		var v T
		if v, ok = next(); ok && !(prev < v) {
			return true
		}
		prev = v
	}
	return n != u.sz
}

// String draws the tree sideways, right subtrees above their parents.
func (u *BST[T]) String() string {
	var sb strings.Builder
	sb.WriteString("BST\n")
	if u.root != nil {
		output(u.root, "", true, &sb)
	}
	return sb.String()
}

func output[T any](n *Node[T], prefix string, isTail bool, sb *strings.Builder) {
	if n.r != nil {
		np := prefix + "    "
		if isTail {
			np = prefix + "│   "
		}
		output(n.r, np, false, sb)
	}
	sb.WriteString(prefix)
	if isTail {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("┌── ")
	}
	fmt.Fprintf(sb, "%v\n", n.v)
	if n.l != nil {
		np := prefix + "│   "
		if isTail {
			np = prefix + "    "
		}
		output(n.l, np, true, sb)
	}
}
