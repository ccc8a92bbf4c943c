package sortable

import (
	"cmp"
	"fmt"
)

// Sortable is the key contract of the red-black tree: a total order expressed
// through equality and strict less-than.
type Sortable[T any] interface {
	Equals(other T) bool
	LessThan(other T) bool
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}

// Ordered adapts any cmp.Ordered type to Sortable without a dedicated wrapper.
//
//	tree := rbtree.New[sortable.Ordered[uint16]]()
//	_ = tree.Insert(sortable.Of[uint16](7))
type Ordered[T cmp.Ordered] struct {
	Value T
}

var _ Sortable[Ordered[int]] = Ordered[int]{}

// Of wraps v in an Ordered.
func Of[T cmp.Ordered](v T) Ordered[T] {
	return Ordered[T]{Value: v}
}

func (o Ordered[T]) Equals(other Ordered[T]) bool {
	return cmp.Compare(o.Value, other.Value) == 0
}

func (o Ordered[T]) LessThan(other Ordered[T]) bool {
	return cmp.Less(o.Value, other.Value)
}

// String formats the wrapped value so printed trees show the bare key.
func (o Ordered[T]) String() string {
	return fmt.Sprint(o.Value)
}
