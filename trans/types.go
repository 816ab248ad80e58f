package trans

import (
	"errors"
	"fmt"
)

// Sentinel errors reported through Iter.Err.
var (
	// ErrNilExpand is reported when an iterator is constructed without an
	// expansion function.
	ErrNilExpand = errors.New("trans: nil expansion function")

	// ErrNilFrontier is reported when NewWith is given a nil frontier.
	ErrNilFrontier = errors.New("trans: nil frontier")

	// ErrOptionViolation is reported when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trans: invalid option supplied")
)

// Option configures an iterator via functional arguments. An invalid Option
// (e.g. a negative depth limit) is recorded internally and surfaced through
// Iter.Err; construction itself never fails.
type Option[T any] func(*Options[T])

// Options holds the tunable parameters of a transitive iterator.
type Options[T any] struct {
	// MaxDepth, if > 0, stops expanding nodes beyond this depth from the
	// seed set (the seeds are depth 0). A value of 0 disables the limit.
	MaxDepth int

	// FilterSuccessor can drop individual successors by returning false.
	// Called for each parent→successor pair produced by the expansion.
	FilterSuccessor func(parent, succ T) bool

	// OnEnqueue is called when a node enters the frontier, seeds included.
	// Receives the node and its depth from the seed set.
	OnEnqueue func(node T, depth int)

	// OnDequeue is called when a node leaves the frontier, immediately
	// before it is yielded.
	OnDequeue func(node T, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all successors kept)
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		MaxDepth:        0,
		FilterSuccessor: func(T, T) bool { return true },
		OnEnqueue:       func(T, int) {},
		OnDequeue:       func(T, int) {},
	}
}

// WithMaxDepth stops expansion at the given depth.
//
//	d > 0:  nodes deeper than d are never produced
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
//
// The type argument cannot be inferred from d; call as WithMaxDepth[V](d).
func WithMaxDepth[T any](d int) Option[T] {
	return func(o *Options[T]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterSuccessor drops successors for which fn returns false.
func WithFilterSuccessor[T any](fn func(parent, succ T) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterSuccessor = fn
		}
	}
}

// WithOnEnqueue registers a callback to run when a node enters the frontier.
func WithOnEnqueue[T any](fn func(node T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a node leaves the frontier.
func WithOnDequeue[T any](fn func(node T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Entry is one pending traversal item: a node plus its depth from the seed
// set. Frontiers supplied to NewWith carry entries, letting custom policies
// rank by depth as well as by node.
type Entry[T any] struct {
	Node  T
	Depth int
}
