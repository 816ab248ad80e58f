// Package prio provides the cost-ordered specialization of the transitive
// iterator: a trans.Iter backed by a stable min-heap frontier, yielding the
// lowest-keyed pending node first.
//
// What
//
//   - New / NewMulti:         nodes ordered by their natural order (cmp.Ordered).
//   - NewFunc / NewMultiFunc: nodes ordered by a caller-supplied less function.
//   - NewKey:                 nodes ordered by a derived key (key func(T) K).
//
// The result is an ordinary *trans.Iter, so Next, Seq, Take and every
// trans.Option apply unchanged.
//
// Ordering guarantees
//
//	Each pop returns the minimum-keyed entry currently pending — not
//	necessarily the minimum ever reachable, since a cheaper route to an
//	already-yielded value may surface later. Ties between equal keys break
//	first-pushed-first (the frontier.Heap is stable), so enumeration is
//	fully deterministic.
//
// No decrease-key
//
//	This is a plain priority frontier, not a full indexed priority queue:
//	duplicate entries for one location accumulate instead of replacing each
//	other. Shortest-path algorithms in the Dijkstra family layer a
//	best-known-cost table on top and skip any popped entry that is already
//	beaten — the lazy-decrease-key pattern; see the package example.
//
// Usage
//
//	// Climb a cost landscape cheapest-first:
//	it := prio.New(0, trans.Slice(func(n int) []int {
//	    return []int{n + 1, n + 2}
//	}))
//	first := it.Take(4) // keys non-decreasing, starting at 0
package prio
