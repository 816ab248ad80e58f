// Package transit is your lazy traversal toolkit for implicit graphs —
// trees, DAGs and arbitrary recursive structures whose edges exist only as
// an expansion rule, never as a materialized adjacency list.
//
// 🚀 What is transit?
//
//	A small, generic, pull-based library that brings together:
//		• Transitive iterators: yield everything reachable from a seed set,
//		  seeds included, one expansion per yielded node
//		• Frontier policies: FIFO (breadth-first), LIFO (depth-first) and a
//		  stable min-heap (cost-ordered), swappable behind one interface
//		• Auto mode: types that know their own successors opt in with a
//		  single method and need no expansion closure
//		• Range-over-func integration: every iterator is an iter.Seq away
//		  from the standard bounded-take / map / filter machinery
//
// ✨ Why choose transit?
//
//   - Truly lazy – requesting N nodes costs exactly N expansions, even over
//     infinite structures
//   - Honest contract – no hidden visited set, no hashing requirement on
//     your node type, no surprise deduplication
//   - Pure Go – generics, no cgo, no hidden deps
//   - Extensible – custom frontiers plug into the same traversal loop
//
// Everything is organized under three subpackages:
//
//	frontier/ — pending-work containers: Queue, Stack, stable Heap
//	trans/    — the transitive iterator core, options, and auto-mode adapters
//	prio/     — the cost-ordered (priority) specialization
//
// Quick ASCII example:
//
//	    ""            breadth-first over s → {s+"a", s+"b", s+"c"}
//	   / | \          yields "", a, b, c, aa, ab, ac, ba, ...
//	  a  b  c         depth-first yields "", a, aa, aaa, ...
//	 /|\ ...
//
// One thing transit deliberately does not do: terminate for you. A cyclic
// or infinite structure enumerates forever — bound consumption with Take,
// a depth limit, or by breaking out of the range.
//
// Dive into the per-package docs and examples/ for runnable demos,
// including a lazy-Dijkstra route search built on prio.
//
//	go get github.com/katalvlaran/transit
package transit
