package prio

import (
	"cmp"

	"github.com/katalvlaran/transit/frontier"
	"github.com/katalvlaran/transit/trans"
)

// New returns a cost-ordered iterator over a naturally ordered node type:
// each step yields the minimum pending node per cmp.Less, ties broken
// first-pushed-first.
func New[T cmp.Ordered](seed T, expand trans.Expand[T], opts ...trans.Option[T]) *trans.Iter[T] {
	return NewMultiFunc([]T{seed}, cmp.Less[T], expand, opts...)
}

// NewMulti is New over multiple seeds.
func NewMulti[T cmp.Ordered](seeds []T, expand trans.Expand[T], opts ...trans.Option[T]) *trans.Iter[T] {
	return NewMultiFunc(seeds, cmp.Less[T], expand, opts...)
}

// NewFunc returns a cost-ordered iterator ranked by an explicit less
// function. less must describe a strict weak ordering; it panics if less
// is nil, matching frontier.NewHeapFunc.
func NewFunc[T any](seed T, less func(a, b T) bool, expand trans.Expand[T], opts ...trans.Option[T]) *trans.Iter[T] {
	return NewMultiFunc([]T{seed}, less, expand, opts...)
}

// NewMultiFunc is NewFunc over multiple seeds. All prio constructors funnel
// here: the heap ranks entries by node key alone, never by depth.
func NewMultiFunc[T any](seeds []T, less func(a, b T) bool, expand trans.Expand[T], opts ...trans.Option[T]) *trans.Iter[T] {
	if less == nil {
		panic("prio: nil less function")
	}
	h := frontier.NewHeapFunc(func(a, b trans.Entry[T]) bool {
		return less(a.Node, b.Node)
	})

	return trans.NewWith(h, seeds, expand, opts...)
}

// NewKey returns a cost-ordered iterator ranked by a key derived from each
// node, for node types that are not themselves ordered. It panics if key
// is nil.
func NewKey[T any, K cmp.Ordered](seed T, key func(T) K, expand trans.Expand[T], opts ...trans.Option[T]) *trans.Iter[T] {
	if key == nil {
		panic("prio: nil key function")
	}

	return NewFunc(seed, func(a, b T) bool { return key(a) < key(b) }, expand, opts...)
}
