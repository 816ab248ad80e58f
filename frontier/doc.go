// Package frontier provides the pending-work containers that drive traversal
// order: a FIFO Queue, a LIFO Stack, and a stable min-Heap, all behind one
// uniform "pop one, push many" interface.
//
// What
//
//   - Frontier[T]: the contract every policy satisfies:
//   - Push(vs ...T) inserts a batch of pending entries per policy
//   - Pop() (T, bool) removes the next entry per policy
//   - Len() int reports the number of pending entries
//   - Queue[T]:  first-in, first-out; insertion order is preserved exactly.
//   - Stack[T]:  last-in, first-out; within a single Push call the batch is
//     popped in the order given, before any previously pending entry.
//   - Heap[T]:   binary min-heap by a less function (or natural order for
//     cmp.Ordered types); ties between equal keys break FIFO, by
//     insertion sequence.
//
// Why
//
//   - Swapping the frontier swaps the enumeration discipline (breadth-first,
//     depth-first, cost-ordered) without touching the traversal loop.
//   - Entries are never deduplicated: a frontier is an ordered multiset, and
//     the same value may be pending several times at once.
//
// Determinism
//
//	All three policies are fully deterministic, including the Heap: equal
//	keys pop in the order they were pushed (a monotone insertion sequence
//	number is the final comparison key). Code may rely on this.
//
// Pop on an empty frontier returns the zero value and false; emptiness is
// exhaustion, not an error.
package frontier
