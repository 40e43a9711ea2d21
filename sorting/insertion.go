package sorting

import "golang.org/x/exp/constraints"

// Insertion sorts data in place by insertion sort.
// Complexity: O(n²) time, O(1) space. Stable.
func Insertion[T constraints.Ordered](data []T, asc bool) {
	InsertionFunc(data, compareOrdered[T], asc)
}

// InsertionFunc is Insertion with a caller-supplied comparator.
//
// Each element is swapped toward the front while its left neighbour belongs
// after it, so equal elements never cross each other.
func InsertionFunc[T any](data []T, cmp CompareFunc[T], asc bool) {
	after := directed(cmp, asc)
	for i := 1; i < len(data); i++ {
		for j := i; j > 0 && after(data[j-1], data[j]); j-- {
			data[j-1], data[j] = data[j], data[j-1]
		}
	}
}
