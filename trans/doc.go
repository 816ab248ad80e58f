// Package trans provides lazy transitive-reachability iterators over
// implicit graphs: structures whose edges exist only as an expansion
// function from a node to its immediate successors.
//
// What
//
//   - Iter[T]: pull-based iterator yielding every node transitively
//     reachable from a seed set, seeds included; a node is always yielded
//     after the node whose expansion produced it.
//   - Disciplines, chosen at construction:
//   - BFS / BFSMulti — level order (FIFO frontier), the default
//   - DFS / DFSMulti — pre-order (LIFO frontier)
//   - NewWith        — any frontier.Frontier, including custom policies
//     (the cost-ordered discipline lives in the prio package)
//   - Expansion contract: Expand[T] = func(T) iter.Seq[T]; Slice adapts a
//     plain []T-returning closure.
//   - Auto mode: types implementing Expander[T] (a Successors method) are
//     traversable via From/FromMulti with no explicit closure.
//   - Consumption: Next for single steps, Seq for range-over-func
//     composition, Take(n) for bounded collection.
//
// Why
//
//   - Enumerate trees, DAGs, or arbitrary recursive structures without ever
//     materializing an adjacency list.
//   - The structure is computed exactly as far as the caller consumes:
//     requesting N nodes costs N expansions, even over infinite structures.
//
// Laziness and termination
//
//	The expansion function runs exactly once per yielded node, at pop time.
//	Nothing is precomputed. The flip side: no visited set or cycle guard is
//	kept, so a cyclic structure never exhausts the iterator and a value
//	reachable along several paths is yielded once per path. Callers bound
//	consumption (Take, MaxDepth, breaking a range) where the structure does
//	not bound itself.
//
// Usage
//
//	// All words over {a,b,c} in length order:
//	it := trans.BFS("", trans.Slice(func(s string) []string {
//	    return []string{s + "a", s + "b", s + "c"}
//	}))
//	words := it.Take(10) // "", "a", "b", "c", "aa", "ab", ...
//
//	// With functional options:
//	it = trans.BFS("", next,
//	    trans.WithMaxDepth[string](3),
//	    trans.WithFilterSuccessor(func(parent, succ string) bool { return succ != "ba" }),
//	    trans.WithOnDequeue(func(s string, depth int) { /* ... */ }),
//	)
//
// Options
//
//   - DefaultOptions(): no depth limit, no filtering, no-op hooks.
//   - WithMaxDepth[T](d):        stop expanding beyond depth d (>0).
//   - WithFilterSuccessor(fn):   drop successors for which fn returns false.
//   - WithOnEnqueue(fn):         hook when a node enters the frontier.
//   - WithOnDequeue(fn):         hook when a node is popped, before yield.
//
// Errors
//
//	Construction never fails and traversal has no error states; an invalid
//	option or nil input is recorded and surfaced via Iter.Err, with Next
//	returning false immediately:
//
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNilExpand        if no expansion function was supplied.
//   - ErrNilFrontier      if NewWith was given a nil frontier.
//
//	A panic inside the expansion function is not caught: it propagates from
//	the Next call that triggered that expansion.
package trans
