package trans

import (
	"iter"
	"slices"

	"github.com/katalvlaran/transit/frontier"
)

// Expand maps a node to the sequence of its immediate successors. The
// sequence may be computed lazily, but it is drained in full each time a
// node is yielded, so it must be finite per node; unbounded depth is fine,
// unbounded branching is not. An empty sequence marks a leaf.
//
// Expand is invoked exactly once per yielded node, at the moment that node
// is popped from the frontier, never ahead of time. It must not rely on
// being called in any other circumstance.
type Expand[T any] func(T) iter.Seq[T]

// Slice adapts a slice-returning closure to an Expand.
func Slice[T any](fn func(T) []T) Expand[T] {
	if fn == nil {
		return nil
	}

	return func(v T) iter.Seq[T] { return slices.Values(fn(v)) }
}

// Iter enumerates every node transitively reachable from a seed set through
// an expansion function, seeds included, without materializing the
// structure: each step pops one pending entry, yields its node, expands it,
// and pushes the successors back into the frontier per policy.
//
// A node is always yielded after the node whose expansion produced it. No
// visited set is kept: values reachable along several paths are yielded
// several times, and traversal over a cyclic structure does not terminate.
// Bounding consumption is the caller's responsibility.
//
// An Iter owns its frontier exclusively and is not safe for concurrent use.
type Iter[T any] struct {
	frontier frontier.Frontier[Entry[T]]
	expand   Expand[T]
	opts     Options[T]
	batch    []Entry[T] // per-step successor buffer, reused across steps
}

// BFS returns a breadth-first iterator: all nodes at depth k are yielded
// before any node at depth k+1, same-depth nodes in parent-yield order and
// then in successor-sequence order. This is the default discipline.
func BFS[T any](seed T, expand Expand[T], opts ...Option[T]) *Iter[T] {
	return NewWith(frontier.NewQueue[Entry[T]](), []T{seed}, expand, opts...)
}

// BFSMulti is BFS over multiple seeds; the seeds themselves are yielded
// first, in the order given.
func BFSMulti[T any](seeds []T, expand Expand[T], opts ...Option[T]) *Iter[T] {
	return NewWith(frontier.NewQueue[Entry[T]](), seeds, expand, opts...)
}

// DFS returns a depth-first (pre-order) iterator: a node's first successor
// and its entire subtree are exhausted before the second successor is
// reached. If a successor's subtree is unbounded, later successors are
// never reached; that is a property of the discipline, not a failure.
func DFS[T any](seed T, expand Expand[T], opts ...Option[T]) *Iter[T] {
	return NewWith(frontier.NewStack[Entry[T]](), []T{seed}, expand, opts...)
}

// DFSMulti is DFS over multiple seeds; the first seed's subtree drains
// before the second seed is reached.
func DFSMulti[T any](seeds []T, expand Expand[T], opts ...Option[T]) *Iter[T] {
	return NewWith(frontier.NewStack[Entry[T]](), seeds, expand, opts...)
}

// NewWith builds an iterator over a caller-supplied frontier discipline.
// This is the fully general constructor behind BFS, DFS, and the prio
// package; use it to plug in a custom policy.
func NewWith[T any](f frontier.Frontier[Entry[T]], seeds []T, expand Expand[T], opts ...Option[T]) *Iter[T] {
	// 1. Apply options; invalid ones are recorded, not returned.
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Validate construction inputs the same way: record, don't fail.
	if o.err == nil && expand == nil {
		o.err = ErrNilExpand
	}
	if o.err == nil && f == nil {
		o.err = ErrNilFrontier
	}

	it := &Iter[T]{frontier: f, expand: expand, opts: o}
	if o.err != nil {
		return it
	}

	// 3. Seed the frontier as one batch at depth 0.
	entries := make([]Entry[T], len(seeds))
	for i, s := range seeds {
		entries[i] = Entry[T]{Node: s}
		o.OnEnqueue(s, 0)
	}
	f.Push(entries...)

	return it
}

// Next advances the traversal by one step: it pops the next pending entry
// per policy, expands it, pushes the successors, and returns the popped
// node. It returns (zero, false) once the frontier is empty or when the
// iterator was constructed with an invalid option (see Err).
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.opts.err != nil {
		return zero, false
	}

	e, ok := it.frontier.Pop()
	if !ok {
		return zero, false
	}
	it.opts.OnDequeue(e.Node, e.Depth)
	it.step(e)

	return e.Node, true
}

// step expands the popped entry and pushes its surviving successors as one
// batch, preserving the successor sequence's own order.
func (it *Iter[T]) step(e Entry[T]) {
	d := e.Depth + 1
	if it.opts.MaxDepth > 0 && d > it.opts.MaxDepth {
		return
	}

	it.batch = it.batch[:0]
	for succ := range it.expand(e.Node) {
		if !it.opts.FilterSuccessor(e.Node, succ) {
			continue
		}
		it.opts.OnEnqueue(succ, d)
		it.batch = append(it.batch, Entry[T]{Node: succ, Depth: d})
	}
	it.frontier.Push(it.batch...)
}

// Seq exposes the traversal as a range-over-func sequence so it composes
// with the standard iterator machinery. The sequence is potentially
// infinite and single-use: breaking out of a range keeps the iterator's
// position, and ranging again resumes rather than restarts.
func (it *Iter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Take consumes and returns up to n nodes. It is the standard way to bound
// a traversal whose reachable set may be infinite.
func (it *Iter[T]) Take(n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for len(out) < n {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

// Pending reports how many entries are currently waiting in the frontier.
func (it *Iter[T]) Pending() int {
	if it.frontier == nil {
		return 0
	}

	return it.frontier.Len()
}

// Err reports a construction-time option violation, if any. A valid
// iterator keeps returning nil; traversal itself has no error states.
func (it *Iter[T]) Err() error { return it.opts.err }
