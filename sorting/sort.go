package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// DefaultAlgorithm is used by Sort when no WithAlgorithm option is given.
const DefaultAlgorithm = AlgoMerge

// Options configures Sort. Use DefaultOptions() to get the default setup
// (merge sort, ascending).
type Options struct {
	// Algorithm picks the implementation.
	Algorithm Algorithm

	// Descending reverses the order.
	Descending bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns merge sort in ascending order.
func DefaultOptions() Options {
	return Options{Algorithm: DefaultAlgorithm}
}

// WithAlgorithm selects the algorithm Sort dispatches to.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithDescending makes Sort order from largest to smallest.
func WithDescending() Option {
	return func(o *Options) {
		o.Descending = true
	}
}

// WithOrder sets the direction explicitly: asc=true ascending, false descending.
func WithOrder(asc bool) Option {
	return func(o *Options) {
		o.Descending = !asc
	}
}

// Sort sorts data in place with the configured algorithm and direction.
// Returns ErrUnknownAlgorithm, leaving data untouched, when the algorithm is not supported.
func Sort[T constraints.Ordered](data []T, opts ...Option) error {
	return SortFunc(data, compareOrdered[T], opts...)
}

// SortFunc is Sort with a caller-supplied comparator.
func SortFunc[T any](data []T, cmp CompareFunc[T], opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	asc := !o.Descending

	switch o.Algorithm {
	case AlgoInsertion:
		InsertionFunc(data, cmp, asc)
	case AlgoBubble:
		BubbleFunc(data, cmp, asc)
	case AlgoMerge:
		MergeFunc(data, cmp, asc)
	case AlgoQuick:
		QuickFunc(data, cmp, asc)
	case AlgoHeap:
		HeapFunc(data, cmp, asc)
	default:
		return fmt.Errorf("Sort(%s): %w", o.Algorithm, ErrUnknownAlgorithm)
	}

	return nil
}
