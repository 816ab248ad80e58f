package trans

import "iter"

// Expander is the opt-in capability for self-expanding node types: a type
// whose values know their own immediate successors. Implementing it lets a
// type be traversed via From or Expansion without a separately supplied
// expansion closure.
//
// The capability is deliberately explicit. No blanket adapter exists for
// arbitrary types: a type participates in auto mode only by carrying this
// method, which keeps ordinary value types from being expanded by accident.
type Expander[T any] interface {
	// Successors returns the immediate successors of the receiver. The
	// sequence must be finite; empty means the receiver is a leaf.
	Successors() iter.Seq[T]
}

// Expansion returns the Expand function derived from T's own Successors
// method. Use it to combine auto mode with a non-default discipline:
//
//	it := trans.DFS(root, trans.Expansion[*Node]())
func Expansion[T Expander[T]]() Expand[T] {
	return func(v T) iter.Seq[T] { return v.Successors() }
}

// From returns a breadth-first iterator over a self-expanding seed.
func From[T Expander[T]](seed T, opts ...Option[T]) *Iter[T] {
	return BFS(seed, Expansion[T](), opts...)
}

// FromMulti returns a breadth-first iterator over multiple self-expanding
// seeds; the seeds are yielded first, in the order given.
func FromMulti[T Expander[T]](seeds []T, opts ...Option[T]) *Iter[T] {
	return BFSMulti(seeds, Expansion[T](), opts...)
}
