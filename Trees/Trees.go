package Trees

import "golang.org/x/exp/constraints"

// Tree represents a binary search tree of distinct values.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false). In this case x is the zero value
// of T and shouldn't be used.
// Receivers that return an error leave the tree unchanged when the error
// is non-nil.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T constraints.Ordered] interface {
	//Insert v to the Tree. Fails with DuplicateValueError if v is present.
	Insert(v T) (*BST[T], error)
	//Remove v from the Tree, returning it. Fails with NotFoundError if v is absent.
	Remove(v T) (T, error)
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//KLargest finds the k-th largest element.
	//1<=k<=Size().
	KLargest(k uint) (T, bool)
	//SecondHighest is KLargest(2), failing with TrivialTreeError on trees
	//with less than 2 elements.
	SecondHighest() (T, error)
	//RankOf v in the tree according to in-order.
	//1<=r<=Size(), 0 if v is absent.
	RankOf(v T) uint
	//Size of the tree.
	Size() int
	//InOrder returns the elements in ascending order.
	InOrder() []T
	//IsBalanced reports whether the subtree heights of every node differ by
	//at most one.
	IsBalanced() bool
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering. This is to be distinguished from
	//whether the tree is balanced or not.
	Corrupt() bool
}
