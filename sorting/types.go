package sorting

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrUnknownAlgorithm indicates that an algorithm name or value is not supported.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm selects one of the implemented sorts.
type Algorithm int

const (
	// AlgoInsertion selects insertion sort.
	AlgoInsertion Algorithm = iota
	// AlgoBubble selects bubble sort.
	AlgoBubble
	// AlgoMerge selects top-down merge sort.
	AlgoMerge
	// AlgoQuick selects quicksort with Lomuto partitioning.
	AlgoQuick
	// AlgoHeap selects heap sort.
	AlgoHeap
)

// algorithmNames maps each Algorithm to its canonical lower-case name.
var algorithmNames = [...]string{
	AlgoInsertion: "insertion",
	AlgoBubble:    "bubble",
	AlgoMerge:     "merge",
	AlgoQuick:     "quick",
	AlgoHeap:      "heap",
}

// String returns the canonical name, e.g. "merge".
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoInsertion, AlgoBubble, AlgoMerge, AlgoQuick, AlgoHeap}
}

// ParseAlgorithm maps a case-insensitive name ("quick", "Merge", ...) to an Algorithm.
// A trailing "sort" is accepted, so "heapsort" and "heap_sort" also work.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(strings.TrimSuffix(n, "sort"), "_")
	for i, s := range algorithmNames {
		if s == n {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
}

// CompareFunc orders two values: negative when a < b, zero when equal,
// positive when a > b (the cmp.Compare convention).
type CompareFunc[T any] func(a, b T) int

// compareOrdered is the CompareFunc for ordered types.
// NaN compares equal to everything, which keeps every algorithm terminating.
func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// directed turns cmp into an "a must come after b" predicate for the requested order.
// For ascending order that is cmp(a,b) > 0; for descending, cmp(a,b) < 0.
func directed[T any](cmp CompareFunc[T], asc bool) func(a, b T) bool {
	if asc {
		return func(a, b T) bool { return cmp(a, b) > 0 }
	}

	return func(a, b T) bool { return cmp(a, b) < 0 }
}
