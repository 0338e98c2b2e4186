package Trees

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. The concrete error types below carry the offending value.
var (
	ErrDuplicateValue = errors.New("value already in tree")
	ErrNotFound       = errors.New("value not in tree")
	ErrTrivialTree    = errors.New("tree has fewer than 2 elements")
)

// DuplicateValueError is returned by Insert when V is already present. The tree is unchanged.
type DuplicateValueError[T any] struct {
	V T
}

func (e DuplicateValueError[T]) Error() string {
	return fmt.Sprintf("cannot insert %v: %v", e.V, ErrDuplicateValue)
}

func (e DuplicateValueError[T]) Is(target error) bool {
	return target == ErrDuplicateValue
}

// NotFoundError is returned by Remove when V is absent. The tree is unchanged.
type NotFoundError[T any] struct {
	V T
}

func (e NotFoundError[T]) Error() string {
	return fmt.Sprintf("cannot remove %v: %v", e.V, ErrNotFound)
}

func (e NotFoundError[T]) Is(target error) bool {
	return target == ErrNotFound
}

// TrivialTreeError is returned by queries that need at least two elements.
type TrivialTreeError struct {
	Size int
}

func (e TrivialTreeError) Error() string {
	return fmt.Sprintf("size %d: %v", e.Size, ErrTrivialTree)
}

func (e TrivialTreeError) Is(target error) bool {
	return target == ErrTrivialTree
}

// InvalidSliceError is the panic value of From when the input isn't strictly ascending.
// A and B are adjacent elements with A >= B.
type InvalidSliceError[T any] struct {
	A, B T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending: %v followed by %v", e.A, e.B)
}
