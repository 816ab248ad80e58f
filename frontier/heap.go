package frontier

import (
	"cmp"
	"container/heap"
)

// Heap is a binary min-heap Frontier: Pop always returns the entry with the
// minimum key per the less function supplied at construction. It backs
// cost-ordered (priority) traversal.
//
// The heap is stable: entries that compare equal under less pop in the order
// they were pushed. Each entry carries a monotone insertion sequence number
// used as the final tie-break, so the pop order is fully deterministic.
//
// Like every Frontier, the heap holds duplicates: pushing the same value
// twice yields two independent entries. There is no decrease-key operation;
// callers wanting Dijkstra-style relaxation push fresh entries and skip
// stale ones when popped (the lazy-decrease-key pattern).
type Heap[T any] struct {
	data heapData[T]
}

// NewHeap returns an empty min-heap frontier ordered by the natural order
// of T (cmp.Less).
func NewHeap[T cmp.Ordered]() *Heap[T] {
	return NewHeapFunc[T](cmp.Less[T])
}

// NewHeapFunc returns an empty min-heap frontier ordered by less.
// less must describe a strict weak ordering; it panics if less is nil.
func NewHeapFunc[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic("frontier: NewHeapFunc called with nil less function")
	}

	return &Heap[T]{data: heapData[T]{less: less}}
}

// Push inserts each entry of the batch, keyed by less. Batch order becomes
// insertion order, so equal-keyed batch-mates pop first-pushed-first.
func (h *Heap[T]) Push(vs ...T) {
	for _, v := range vs {
		h.data.seq++
		heap.Push(&h.data, heapItem[T]{val: v, seq: h.data.seq})
	}
}

// Pop removes and returns the minimum-keyed entry.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if len(h.data.items) == 0 {
		return zero, false
	}

	return heap.Pop(&h.data).(heapItem[T]).val, true
}

// Len reports the number of pending entries.
func (h *Heap[T]) Len() int { return len(h.data.items) }

// heapItem pairs an entry with its insertion sequence number.
type heapItem[T any] struct {
	val T
	seq uint64
}

// heapData implements heap.Interface over heapItem slices.
type heapData[T any] struct {
	items []heapItem[T]
	less  func(a, b T) bool
	seq   uint64
}

func (d *heapData[T]) Len() int { return len(d.items) }

// Less orders by the caller's key first and by insertion sequence among
// equal keys, which is what makes the heap stable.
func (d *heapData[T]) Less(i, j int) bool {
	a, b := d.items[i], d.items[j]
	if d.less(a.val, b.val) {
		return true
	}
	if d.less(b.val, a.val) {
		return false
	}

	return a.seq < b.seq
}

func (d *heapData[T]) Swap(i, j int) { d.items[i], d.items[j] = d.items[j], d.items[i] }

// Push appends x; called by container/heap, x is always a heapItem[T].
func (d *heapData[T]) Push(x any) { d.items = append(d.items, x.(heapItem[T])) }

// Pop removes and returns the last item; called by container/heap.
func (d *heapData[T]) Pop() any {
	old := d.items
	n := len(old)
	item := old[n-1]
	var zero heapItem[T]
	old[n-1] = zero // release the reference for GC
	d.items = old[:n-1]

	return item
}
