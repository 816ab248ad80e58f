package frontier

// Frontier is an ordered multiset of pending entries with a policy-specific
// pop order. Implementations must copy the entries of each Push batch into
// their own storage; the variadic slice is not retained.
//
// A Frontier is not safe for concurrent use.
type Frontier[T any] interface {
	// Push inserts a batch of entries per the policy. Entries of one batch
	// keep their relative order on the way out wherever the policy ranks
	// them equally (Queue, Heap) or treats them as one unit (Stack).
	Push(vs ...T)

	// Pop removes and returns the next entry per the policy.
	// It returns the zero value and false when no entries are pending.
	Pop() (T, bool)

	// Len reports the number of pending entries.
	Len() int
}

// compactAt is the minimum consumed-prefix length before a Queue reclaims
// the space of already-popped entries.
const compactAt = 32

// Queue is a FIFO Frontier: entries pop in exactly the order they were
// pushed. It backs breadth-first (level-order) traversal.
//
// The zero value is ready to use; NewQueue exists for symmetry with the
// other policies.
type Queue[T any] struct {
	buf  []T
	head int
}

// NewQueue returns an empty FIFO frontier.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

// Push appends the batch to the back of the queue in the order given.
func (q *Queue[T]) Push(vs ...T) { q.buf = append(q.buf, vs...) }

// Pop removes and returns the front entry.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head >= len(q.buf) {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero // release the reference for GC
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head >= compactAt && q.head > len(q.buf)/2 {
		n := copy(q.buf, q.buf[q.head:])
		clear(q.buf[n:])
		q.buf = q.buf[:n]
		q.head = 0
	}

	return v, true
}

// Len reports the number of pending entries.
func (q *Queue[T]) Len() int { return len(q.buf) - q.head }

// Stack is a LIFO Frontier backing depth-first (pre-order) traversal.
//
// A Push batch is inserted so that its first entry is popped first: the
// batch as a whole sits on top of everything pushed earlier, and within
// the batch the given order is preserved on the way out. This is what
// makes a node's first successor subtree drain completely before its
// second successor is reached.
//
// The zero value is ready to use.
type Stack[T any] struct {
	buf []T
}

// NewStack returns an empty LIFO frontier.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

// Push places the batch on top of the stack, first entry topmost.
func (s *Stack[T]) Push(vs ...T) {
	for i := len(vs) - 1; i >= 0; i-- {
		s.buf = append(s.buf, vs[i])
	}
}

// Pop removes and returns the top entry.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.buf)
	if n == 0 {
		return zero, false
	}
	v := s.buf[n-1]
	s.buf[n-1] = zero // release the reference for GC
	s.buf = s.buf[:n-1]

	return v, true
}

// Len reports the number of pending entries.
func (s *Stack[T]) Len() int { return len(s.buf) }
